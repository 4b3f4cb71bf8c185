package resume2pdf

import (
	"strings"

	"github.com/alnah/go-resume2pdf/internal/dateutil"
)

// FormatText renders a résumé as plain text. Section order matches the
// HTML templates; date formatting is identical, so text extracted from a
// PDF render and this output agree on every date string.
func FormatText(resume *ResumeDocument) string {
	var sb strings.Builder

	sb.WriteString(resume.Basics.Name)
	sb.WriteByte('\n')
	if resume.Basics.Label != "" {
		sb.WriteString(resume.Basics.Label)
		sb.WriteByte('\n')
	}
	if contact := contactLine(resume.Basics); contact != "" {
		sb.WriteString(contact)
		sb.WriteByte('\n')
	}
	for _, p := range resume.Basics.Profiles {
		sb.WriteString(p.Network)
		if p.Username != "" {
			sb.WriteString(": " + p.Username)
		}
		if p.URL != "" {
			sb.WriteString(" (" + p.URL + ")")
		}
		sb.WriteByte('\n')
	}

	if resume.Basics.Summary != "" {
		writeHeading(&sb, "SUMMARY")
		sb.WriteString(resume.Basics.Summary)
		sb.WriteByte('\n')
	}

	if len(resume.Work) > 0 {
		writeHeading(&sb, "EXPERIENCE")
		for _, w := range resume.Work {
			head := w.Position
			if w.Name != "" {
				if head != "" {
					head += ", "
				}
				head += w.Name
			}
			sb.WriteString(head)
			sb.WriteByte('\n')
			if r := dateutil.FormatRange(w.StartDate, w.EndDate); r != "" {
				sb.WriteString(r)
				if w.Location != "" {
					sb.WriteString(" | " + w.Location)
				}
				sb.WriteByte('\n')
			}
			if w.Summary != "" {
				sb.WriteString(w.Summary)
				sb.WriteByte('\n')
			}
			for _, h := range w.Highlights {
				sb.WriteString("- " + h + "\n")
			}
			sb.WriteByte('\n')
		}
	}

	if len(resume.Education) > 0 {
		writeHeading(&sb, "EDUCATION")
		for _, e := range resume.Education {
			sb.WriteString(e.Institution)
			sb.WriteByte('\n')
			var meta []string
			if e.StudyType != "" || e.Area != "" {
				degree := e.StudyType
				if e.Area != "" {
					if degree != "" {
						degree += ", "
					}
					degree += e.Area
				}
				meta = append(meta, degree)
			}
			if r := dateutil.FormatRange(e.StartDate, e.EndDate); r != "" {
				meta = append(meta, r)
			}
			if e.Score != "" {
				meta = append(meta, e.Score)
			}
			if len(meta) > 0 {
				sb.WriteString(strings.Join(meta, " | "))
				sb.WriteByte('\n')
			}
			sb.WriteByte('\n')
		}
	}

	if len(resume.Skills) > 0 {
		writeHeading(&sb, "SKILLS")
		for _, s := range resume.Skills {
			sb.WriteString(s.Name)
			if len(s.Keywords) > 0 {
				sb.WriteString(": " + strings.Join(s.Keywords, ", "))
			}
			sb.WriteByte('\n')
		}
	}

	if len(resume.Projects) > 0 {
		writeHeading(&sb, "PROJECTS")
		for _, p := range resume.Projects {
			sb.WriteString(p.Name)
			if r := dateutil.FormatRange(p.StartDate, p.EndDate); r != "" {
				sb.WriteString(" (" + r + ")")
			}
			sb.WriteByte('\n')
			if p.Description != "" {
				sb.WriteString(p.Description)
				sb.WriteByte('\n')
			}
			for _, h := range p.Highlights {
				sb.WriteString("- " + h + "\n")
			}
			sb.WriteByte('\n')
		}
	}

	if len(resume.Certificates) > 0 {
		writeHeading(&sb, "CERTIFICATES")
		for _, c := range resume.Certificates {
			sb.WriteString(c.Name)
			if c.Issuer != "" {
				sb.WriteString(", " + c.Issuer)
			}
			if c.Date != "" {
				sb.WriteString(" | " + dateutil.FormatMonthYear(c.Date))
			}
			sb.WriteByte('\n')
		}
	}

	if len(resume.Languages) > 0 {
		writeHeading(&sb, "LANGUAGES")
		for _, l := range resume.Languages {
			sb.WriteString(l.Language)
			if l.Fluency != "" {
				sb.WriteString(": " + l.Fluency)
			}
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func writeHeading(sb *strings.Builder, title string) {
	sb.WriteByte('\n')
	sb.WriteString(title)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("-", len(title)))
	sb.WriteByte('\n')
}

// contactLine joins the populated contact fields with " | ", matching the
// HTML templates' contact block.
func contactLine(b Basics) string {
	var parts []string
	if b.Email != "" {
		parts = append(parts, b.Email)
	}
	if b.Phone != "" {
		parts = append(parts, b.Phone)
	}
	if b.URL != "" {
		parts = append(parts, b.URL)
	}
	if b.Location != nil && b.Location.City != "" {
		city := b.Location.City
		if b.Location.Region != "" {
			city += ", " + b.Location.Region
		}
		parts = append(parts, city)
	}
	return strings.Join(parts, " | ")
}
