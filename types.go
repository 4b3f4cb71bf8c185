package resume2pdf

import (
	"fmt"
	"log/slog"
	"regexp"
	"time"
)

// Template name constants. These mirror the embedded template set; the
// canonical list lives in internal/assets.
const (
	TemplateATS    = "ats"
	TemplateModern = "modern"

	// DefaultTemplate is used when RenderOptions.Template is empty, and as
	// the silent fallback for unrecognized template names.
	DefaultTemplate = TemplateATS
)

// Producer is the fixed producer/creator metadata string stamped into
// normalized artifacts in place of the renderer's own identification.
const Producer = "Resume PDF Generator"

// Page geometry in inches (US Letter) and the matching print viewport in
// CSS pixels at 96dpi. The exporter and the pool must agree on these.
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.5

	viewportWidthPx  = 816  // 8.5in * 96dpi
	viewportHeightPx = 1056 // 11in * 96dpi
)

// Default timeouts.
const (
	// defaultContentTimeout bounds the content-set step (navigation plus
	// structural parse). Exceeding it is a hard PDFGenerationError.
	defaultContentTimeout = 10 * time.Second

	// defaultIdleTimeout is how long the pool keeps an unused browser
	// process alive before tearing it down.
	defaultIdleTimeout = 60 * time.Second
)

// fixedTimestampRe matches the PDF date encoding accepted for
// DeterminismConfig.FixedCreationDate: D:YYYYMMDDHHmmSS+00'00'.
var fixedTimestampRe = regexp.MustCompile(`^D:\d{14}\+00'00'$`)

// RenderOptions configures a single render. Construct with
// DefaultRenderOptions and override fields; the value is immutable for the
// duration of the render call.
type RenderOptions struct {
	// Template selects one of the built-in templates. Empty selects the
	// default. Unrecognized names fall back to the default with a logged
	// warning; a render never fails on template name alone.
	Template string

	// ATSMode suppresses decorative styling while preserving every
	// content-bearing element and its order.
	ATSMode bool

	// Deterministic enables metadata normalization of the exported
	// artifact. Defaults to true via DefaultRenderOptions.
	Deterministic bool

	// Determinism configures which metadata fields are normalized.
	Determinism DeterminismConfig

	// OutputPath is where the artifact is written. The containing
	// directory must exist.
	OutputPath string
}

// DefaultRenderOptions returns options with determinism enabled and the
// default template selected.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Template:      DefaultTemplate,
		Deterministic: true,
		Determinism:   DefaultDeterminismConfig(),
	}
}

// Validate checks render options for structural problems.
func (o *RenderOptions) Validate() error {
	return o.Determinism.Validate()
}

// DeterminismConfig selects which non-deterministic metadata fields are
// stripped or replaced during normalization.
type DeterminismConfig struct {
	// StripDates removes /CreationDate and /ModDate entirely.
	StripDates bool

	// StripID removes the document's random /ID trailer array.
	StripID bool

	// NormalizeProducer replaces /Producer and /Creator values with the
	// Producer constant.
	NormalizeProducer bool

	// FixedCreationDate, when non-empty, is inserted as the creation date
	// after the title metadata field. Format: D:YYYYMMDDHHmmSS+00'00'.
	// Used when an artifact must declare a creation date, but a stable one.
	FixedCreationDate string
}

// DefaultDeterminismConfig strips everything and fixes nothing.
func DefaultDeterminismConfig() DeterminismConfig {
	return DeterminismConfig{
		StripDates:        true,
		StripID:           true,
		NormalizeProducer: true,
	}
}

// Validate checks the fixed timestamp encoding if one is set.
func (c *DeterminismConfig) Validate() error {
	if c.FixedCreationDate != "" && !fixedTimestampRe.MatchString(c.FixedCreationDate) {
		return fmt.Errorf("%w: %q (want D:YYYYMMDDHHmmSS+00'00')", ErrInvalidTimestamp, c.FixedCreationDate)
	}
	return nil
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	contentTimeout time.Duration
	idleTimeout    time.Duration
	verifyOutput   bool
	logger         *slog.Logger
}

// WithContentTimeout sets the hard timeout for the content-set step.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithContentTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("resume2pdf: WithContentTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.contentTimeout = d
	}
}

// WithIdleTimeout sets how long the renderer pool keeps an idle browser
// alive. Only applies to the pool the Generator creates itself; ignored
// when a pool is injected via WithRendererPool.
func WithIdleTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("resume2pdf: WithIdleTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.idleTimeout = d
	}
}

// WithLogger sets the logger used for warnings and cleanup failures.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.cfg.logger = l
	}
}

// WithRendererPool injects a caller-owned pool. The caller keeps
// responsibility for shutting it down; Generator.Close will not touch it.
func WithRendererPool(p *RendererPool) Option {
	return func(g *Generator) {
		g.pool = p
		g.ownsPool = false
	}
}

// WithVerifyOutput enables pdfcpu validation of normalized artifacts.
// Off by default: stripping metadata leaves stale xref offsets that only
// relaxed readers accept, so verification is an explicit opt-in.
func WithVerifyOutput() Option {
	return func(g *Generator) {
		g.cfg.verifyOutput = true
	}
}

// withExporter injects a documentExporter (used by tests).
func withExporter(e documentExporter) Option {
	return func(g *Generator) {
		g.exporter = e
	}
}
