// Package resume2pdf turns JSON Resume documents into deterministic PDF
// artifacts: the same résumé data always produces byte-identical output,
// regardless of when, where, or in what timezone it is rendered.
//
// The pipeline renders résumé data through an embedded HTML template set,
// paginates the result with a pooled headless browser, then normalizes the
// artifact's metadata (timestamps, document IDs, producer strings) so that
// repeated runs agree byte for byte.
//
// Basic usage:
//
//	g := resume2pdf.NewGenerator()
//	defer g.Close()
//
//	opts := resume2pdf.DefaultRenderOptions()
//	opts.OutputPath = "resume.pdf"
//	err := g.GeneratePDF(ctx, resume, opts)
//
// HTML and plain-text output are available through GenerateHTML and
// GenerateText on the same Generator.
package resume2pdf
