package resume2pdf

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-resume2pdf/internal/assets"
	"github.com/alnah/go-resume2pdf/internal/dateutil"
)

// TemplateRenderer compiles the fixed template set against résumé data into
// a self-contained HTML string: inline styles, no external resources, no
// script execution required. It is a pure function of its inputs plus the
// embedded template sources.
type TemplateRenderer struct {
	loader assets.Loader
	cache  *templateCache
	md     *markdownRenderer
	logger *slog.Logger

	// compatCheck receives rendered HTML for the report-only external
	// reference scan. Injectable for tests; never blocks or alters output.
	compatCheck func(html string)
}

// NewTemplateRenderer creates a renderer over the embedded template set.
func NewTemplateRenderer(logger *slog.Logger) *TemplateRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	r := &TemplateRenderer{
		loader: assets.NewEmbeddedLoader(),
		cache:  newTemplateCache(defaultCacheSize, defaultCacheTTL),
		md:     newMarkdownRenderer(),
		logger: logger,
	}
	r.compatCheck = func(html string) {
		go reportExternalReferences(html, logger)
	}
	return r
}

// templateData is the root object every template executes against.
type templateData struct {
	Title  string
	ATS    bool
	Resume *ResumeDocument
}

// Render produces the canonical HTML for one résumé. Identical (resume,
// options) input always yields byte-identical output: section iteration
// follows insertion order and date formatting is timezone-independent.
//
// An unrecognized template name falls back to the default template with a
// logged warning; a render never fails on template name alone.
func (r *TemplateRenderer) Render(resume *ResumeDocument, opts RenderOptions) (string, error) {
	if resume == nil {
		return "", ErrNilResume
	}
	if resume.Basics.Name == "" {
		return "", ErrEmptyName
	}

	name := opts.Template
	if name == "" {
		name = DefaultTemplate
	}

	ct, err := r.compiled(name)
	if errors.Is(err, assets.ErrTemplateNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
		// Policy choice, documented: unknown template names substitute the
		// default rather than failing the render.
		r.logger.Warn("unknown template, falling back to default",
			"template", name, "default", DefaultTemplate)
		ct, err = r.compiled(DefaultTemplate)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	data := templateData{
		Title:  resume.Title(),
		ATS:    opts.ATSMode,
		Resume: resume,
	}

	var buf bytes.Buffer
	if err := ct.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	html := buf.String()
	if r.compatCheck != nil {
		r.compatCheck(html)
	}
	return html, nil
}

// compiled returns the compiled template for name, consulting the cache
// first. Entries past their TTL are recompiled.
func (r *TemplateRenderer) compiled(name string) (*compiledTemplate, error) {
	if ct, ok := r.cache.get(name); ok {
		return ct, nil
	}

	src, err := r.loader.LoadTemplate(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(r.funcMap()).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing template %q: %w", name, err)
	}

	ct := &compiledTemplate{name: name, tmpl: tmpl, compiledAt: time.Now()}
	r.cache.put(ct)
	return ct, nil
}

// funcMap exposes the deterministic formatting helpers to templates.
func (r *TemplateRenderer) funcMap() template.FuncMap {
	return template.FuncMap{
		"monthYear":      dateutil.FormatMonthYear,
		"dateRange":      dateutil.FormatRange,
		"join":           strings.Join,
		"markdown":       r.md.renderBlock,
		"markdownInline": r.md.renderInline,
	}
}
