package resume2pdf

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// sampleResume returns a fixture exercising every section.
func sampleResume() *ResumeDocument {
	return &ResumeDocument{
		Basics: Basics{
			Name:    "John Doe",
			Label:   "Software Engineer",
			Email:   "john@example.com",
			Phone:   "+1 555 0100",
			URL:     "https://johndoe.dev",
			Summary: "Engineer with a focus on **reliable** systems.",
			Location: &Location{
				City:   "Portland",
				Region: "OR",
			},
			Profiles: []Profile{
				{Network: "GitHub", Username: "johndoe", URL: "https://github.com/johndoe"},
			},
		},
		Work: []WorkEntry{
			{
				Name:       "Acme Corp",
				Position:   "Senior Engineer",
				Location:   "Remote",
				StartDate:  "2021-03-15",
				Summary:    "Leads the platform team.",
				Highlights: []string{"Cut deploy time by half", "Mentored four engineers"},
			},
			{
				Name:      "Initech",
				Position:  "Engineer",
				StartDate: "2018-06",
				EndDate:   "2021-02",
			},
		},
		Education: []EducationEntry{
			{
				Institution: "State University",
				Area:        "Computer Science",
				StudyType:   "BSc",
				StartDate:   "2014",
				EndDate:     "2018",
				Score:       "3.8 GPA",
			},
		},
		Skills: []SkillGroup{
			{Name: "Languages", Keywords: []string{"Go", "Python"}},
		},
		Projects: []Project{
			{Name: "toolbelt", Description: "CLI utilities.", StartDate: "2020-01", Highlights: []string{"1k stars"}},
		},
		Certificates: []Certificate{
			{Name: "CKA", Issuer: "CNCF", Date: "2022-09"},
		},
		Languages: []Language{
			{Language: "English", Fluency: "Native"},
		},
	}
}

// newTestRenderer builds a renderer with a silent logger and the
// compatibility goroutine disabled, so renders are fully synchronous.
func newTestRenderer(t *testing.T) (*TemplateRenderer, *bytes.Buffer) {
	t.Helper()
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	r := NewTemplateRenderer(logger)
	r.compatCheck = nil
	return r, &logBuf
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()
	r, _ := newTestRenderer(t)
	resume := sampleResume()
	opts := DefaultRenderOptions()

	first, err := r.Render(resume, opts)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := r.Render(resume, opts)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}

	if first != second {
		t.Error("repeated renders of identical input differ")
	}
}

func TestRender_SectionOmission(t *testing.T) {
	t.Parallel()
	r, _ := newTestRenderer(t)

	full, err := r.Render(sampleResume(), DefaultRenderOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	minimal := &ResumeDocument{Basics: Basics{Name: "Jane Roe"}}
	sparse, err := r.Render(minimal, DefaultRenderOptions())
	if err != nil {
		t.Fatalf("render minimal: %v", err)
	}

	for _, heading := range []string{
		"<h2>Summary</h2>", "<h2>Experience</h2>", "<h2>Education</h2>",
		"<h2>Skills</h2>", "<h2>Projects</h2>", "<h2>Certificates</h2>",
		"<h2>Languages</h2>",
	} {
		if !strings.Contains(full, heading) {
			t.Errorf("full render missing %s", heading)
		}
		if strings.Contains(sparse, heading) {
			t.Errorf("sparse render contains %s for absent section", heading)
		}
	}
}

func TestRender_TitleMetadata(t *testing.T) {
	t.Parallel()
	r, _ := newTestRenderer(t)

	html, err := r.Render(sampleResume(), DefaultRenderOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(html, "<title>John Doe - Resume</title>") {
		t.Error("rendered HTML missing derived document title")
	}
}

func TestRender_DateFormatting(t *testing.T) {
	t.Parallel()
	r, _ := newTestRenderer(t)

	html, err := r.Render(sampleResume(), DefaultRenderOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"March 2021 - Present",
		"June 2018 - February 2021",
		"2014 - 2018", // year-only precision preserved
		"September 2022",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing date text %q", want)
		}
	}
}

// ATS mode must change styling only: the extracted text content and its
// order are identical to the decorated rendering.
func TestRender_ATSTextEquivalence(t *testing.T) {
	t.Parallel()
	r, _ := newTestRenderer(t)
	resume := sampleResume()

	for _, tmpl := range []string{TemplateATS, TemplateModern} {
		opts := DefaultRenderOptions()
		opts.Template = tmpl

		opts.ATSMode = false
		plain, err := r.Render(resume, opts)
		if err != nil {
			t.Fatalf("render %s: %v", tmpl, err)
		}

		opts.ATSMode = true
		ats, err := r.Render(resume, opts)
		if err != nil {
			t.Fatalf("render %s ats: %v", tmpl, err)
		}

		if extractText(t, plain) != extractText(t, ats) {
			t.Errorf("template %s: ATS mode changed text content", tmpl)
		}
	}
}

var spaceRe = regexp.MustCompile(`\s+`)

func extractText(t *testing.T, html string) string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing rendered HTML: %v", err)
	}
	return spaceRe.ReplaceAllString(doc.Find("body").Text(), " ")
}

func TestRender_UnknownTemplateFallsBack(t *testing.T) {
	t.Parallel()
	r, logBuf := newTestRenderer(t)

	opts := DefaultRenderOptions()
	opts.Template = "no-such-template"

	html, err := r.Render(sampleResume(), opts)
	if err != nil {
		t.Fatalf("render with unknown template should fall back, got %v", err)
	}
	if html == "" {
		t.Fatal("fallback render produced empty output")
	}
	if !strings.Contains(logBuf.String(), "falling back") {
		t.Error("fallback did not log a warning")
	}
}

func TestRender_InputValidation(t *testing.T) {
	t.Parallel()
	r, _ := newTestRenderer(t)

	tests := []struct {
		name    string
		resume  *ResumeDocument
		wantErr error
	}{
		{"nil resume", nil, ErrNilResume},
		{"empty name", &ResumeDocument{}, ErrEmptyName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := r.Render(tt.resume, DefaultRenderOptions())
			if err != tt.wantErr {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRender_SelfContained(t *testing.T) {
	t.Parallel()
	r, _ := newTestRenderer(t)

	for _, tmpl := range []string{TemplateATS, TemplateModern} {
		opts := DefaultRenderOptions()
		opts.Template = tmpl

		html, err := r.Render(sampleResume(), opts)
		if err != nil {
			t.Fatalf("render %s: %v", tmpl, err)
		}
		if findings := externalReferences(html); len(findings) > 0 {
			t.Errorf("template %s: rendered HTML is not self-contained: %v", tmpl, findings)
		}
	}
}

func TestRender_MarkdownEscaping(t *testing.T) {
	t.Parallel()
	r, _ := newTestRenderer(t)

	resume := &ResumeDocument{
		Basics: Basics{
			Name:    "Jane Roe",
			Summary: `injection <script>alert("x")</script> attempt`,
		},
	}
	html, err := r.Render(resume, DefaultRenderOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("raw HTML from résumé data passed through unescaped")
	}
}
