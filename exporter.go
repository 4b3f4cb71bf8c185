package resume2pdf

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-resume2pdf/internal/fileutil"
)

// documentExporter abstracts HTML-to-artifact export to allow test doubles.
type documentExporter interface {
	Export(ctx context.Context, htmlContent, outputPath string) error
}

// Compile-time interface check.
var _ documentExporter = (*Exporter)(nil)

// Exporter feeds canonical HTML into a pooled page and writes the paginated
// PDF artifact to disk. It borrows pages from a caller-owned RendererPool;
// it never creates or destroys browser processes itself.
type Exporter struct {
	pool    *RendererPool
	timeout time.Duration
	logger  *slog.Logger
}

// NewExporter creates an Exporter backed by the given pool. The timeout
// bounds the content-set step; zero selects the default.
func NewExporter(pool *RendererPool, timeout time.Duration, logger *slog.Logger) *Exporter {
	if timeout <= 0 {
		timeout = defaultContentTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{pool: pool, timeout: timeout, logger: logger}
}

// Export renders htmlContent to a paginated PDF at outputPath.
//
// The content-set step (navigation plus structural parse, not resource
// idle: no external resources are ever loaded) is bounded by the
// exporter's timeout; exceeding it is a hard PDFGenerationError, never
// retried here. Filesystem problems writing the artifact surface as
// FileSystemError with the offending path. The caller must pre-create the
// containing directory.
func (e *Exporter) Export(ctx context.Context, htmlContent, outputPath string) error {
	page, err := e.pool.AcquirePage(ctx)
	if err != nil {
		return pdfErr("acquire", err)
	}
	defer e.pool.ReleasePage(page)

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return fsErr("write", tmpPath, err)
	}
	defer cleanup()

	if err := page.Navigate("file://" + tmpPath); err != nil {
		return pdfErr("content-set", fmt.Errorf("%w: %v", ErrPageLoad, err))
	}
	if err := page.Timeout(e.timeout).WaitLoad(); err != nil {
		return pdfErr("content-set", fmt.Errorf("%w: %v", ErrPageLoad, err))
	}

	if err := ctx.Err(); err != nil {
		return pdfErr("export", err)
	}

	reader, err := page.PDF(buildPrintOptions())
	if err != nil {
		return pdfErr("export", err)
	}

	pdfBytes, err := io.ReadAll(reader)
	if err != nil {
		return pdfErr("export", err)
	}

	if err := writeArtifact(outputPath, pdfBytes); err != nil {
		return err
	}

	return nil
}

// buildPrintOptions constructs the fixed-geometry print request: US Letter,
// half-inch margins, backgrounds on, the document's own @page size honored
// over renderer defaults, tagged output for ATS parsers, no header/footer,
// no auto-shrink.
func buildPrintOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(paperWidthInches),
		PaperHeight:       floatPtr(paperHeightInches),
		MarginTop:         floatPtr(marginInches),
		MarginBottom:      floatPtr(marginInches),
		MarginLeft:        floatPtr(marginInches),
		MarginRight:       floatPtr(marginInches),
		Scale:             floatPtr(1.0),
		PrintBackground:   true,
		PreferCSSPageSize: true,
		GenerateTaggedPDF: true,
	}
}

// writeArtifact writes the artifact bytes, mapping OS errors to
// FileSystemError with the offending path.
func writeArtifact(path string, data []byte) error {
	if path == "" {
		return fsErr("write", path, ErrNoOutputPath)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fsErr("write", path, err)
	}
	return nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
