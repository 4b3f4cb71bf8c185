package resume2pdf

import (
	"context"
	"log/slog"
)

// Generator orchestrates the rendering pipeline: template rendering into
// canonical HTML, paginated export through the renderer pool, and
// determinism normalization of the written artifact. It also dispatches
// the simpler HTML and plain-text output formats.
//
// Create with NewGenerator, render with the Generate methods, and Close
// when done to release the browser.
type Generator struct {
	cfg      generatorConfig
	renderer *TemplateRenderer
	pool     *RendererPool
	ownsPool bool
	exporter documentExporter
}

// NewGenerator creates a Generator with default configuration. Use options
// to customize behavior (e.g. WithContentTimeout, WithRendererPool).
// No browser is launched until the first PDF generation.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		cfg: generatorConfig{
			contentTimeout: defaultContentTimeout,
			idleTimeout:    defaultIdleTimeout,
		},
		ownsPool: true,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.cfg.logger == nil {
		g.cfg.logger = slog.Default()
	}

	g.renderer = NewTemplateRenderer(g.cfg.logger)

	if g.pool == nil {
		g.pool = NewRendererPool(
			WithPoolIdleTimeout(g.cfg.idleTimeout),
			WithPoolLogger(g.cfg.logger),
		)
	}

	// Create the production exporter if not injected (e.g. by tests).
	if g.exporter == nil {
		g.exporter = NewExporter(g.pool, g.cfg.contentTimeout, g.cfg.logger)
	}

	return g
}

// GeneratePDF runs the full pipeline for one résumé: render canonical
// HTML, export a paginated artifact to opts.OutputPath, then normalize
// its metadata unless opts.Deterministic is false.
//
// The containing directory of the output path must exist. Cleanup-phase
// failures (releasing the page) are logged and swallowed inside the pool;
// a successful export is never retroactively failed by cleanup trouble.
func (g *Generator) GeneratePDF(ctx context.Context, resume *ResumeDocument, opts RenderOptions) error {
	if err := validateRequest(resume, opts); err != nil {
		return err
	}

	htmlContent, err := g.renderer.Render(resume, opts)
	if err != nil {
		return err
	}

	if err := g.exporter.Export(ctx, htmlContent, opts.OutputPath); err != nil {
		return err
	}

	if opts.Deterministic {
		if err := NormalizePDF(opts.OutputPath, opts.Determinism); err != nil {
			return err
		}
		if g.cfg.verifyOutput {
			if err := VerifyPDF(opts.OutputPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// GenerateHTML writes the canonical HTML rendering to opts.OutputPath.
// This is the same HTML the PDF pipeline feeds to the renderer.
func (g *Generator) GenerateHTML(resume *ResumeDocument, opts RenderOptions) error {
	if err := validateRequest(resume, opts); err != nil {
		return err
	}

	htmlContent, err := g.renderer.Render(resume, opts)
	if err != nil {
		return err
	}

	return writeArtifact(opts.OutputPath, []byte(htmlContent))
}

// GenerateText writes a plain-text rendering to opts.OutputPath. Sections
// appear in the same order as the HTML output.
func (g *Generator) GenerateText(resume *ResumeDocument, opts RenderOptions) error {
	if err := validateRequest(resume, opts); err != nil {
		return err
	}

	return writeArtifact(opts.OutputPath, []byte(FormatText(resume)))
}

// Close shuts down the renderer pool if this Generator owns it. Pools
// injected via WithRendererPool stay the caller's responsibility.
func (g *Generator) Close() error {
	if g.ownsPool && g.pool != nil {
		return g.pool.Shutdown()
	}
	return nil
}

// validateRequest checks the caller-facing invariants shared by all
// Generate methods.
func validateRequest(resume *ResumeDocument, opts RenderOptions) error {
	if resume == nil {
		return ErrNilResume
	}
	if resume.Basics.Name == "" {
		return ErrEmptyName
	}
	if opts.OutputPath == "" {
		return ErrNoOutputPath
	}
	return opts.Validate()
}
