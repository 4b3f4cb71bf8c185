package resume2pdf

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownRenderer converts the Markdown permitted in summary and highlight
// fields into HTML fragments. Raw HTML in the source is escaped before
// conversion, so user-supplied markup survives as visible text instead of
// being executed or silently dropped by the renderer.
type markdownRenderer struct {
	md goldmark.Markdown
}

// rawHTMLEscaper neutralizes HTML-significant characters ahead of Markdown
// conversion. CommonMark resolves the resulting entities back to characters
// during parsing and re-escapes them on output, so Markdown syntax is
// unaffected while inline tags render as literal text.
var rawHTMLEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// renderBlock converts a Markdown field to block-level HTML (paragraphs,
// lists). Conversion failures fall back to the escaped source text; a
// render never fails on Markdown alone.
func (r *markdownRenderer) renderBlock(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(rawHTMLEscaper.Replace(src)), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(buf.String())
}

// renderInline converts a Markdown field to inline HTML, unwrapping the
// single enclosing paragraph goldmark emits for one-line input. Multi-block
// input is returned as-is.
func (r *markdownRenderer) renderInline(src string) template.HTML {
	rendered := string(r.renderBlock(src))
	trimmed := strings.TrimSpace(rendered)

	if strings.HasPrefix(trimmed, "<p>") && strings.HasSuffix(trimmed, "</p>") {
		inner := trimmed[len("<p>") : len(trimmed)-len("</p>")]
		if !strings.Contains(inner, "<p>") {
			return template.HTML(inner)
		}
	}
	return template.HTML(trimmed)
}
