package resume2pdf

import (
	"strings"
	"testing"
)

func TestRenderBlock(t *testing.T) {
	t.Parallel()
	r := newMarkdownRenderer()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"emphasis", "a **bold** claim", "<strong>bold</strong>"},
		{"list", "- one\n- two", "<li>one</li>"},
		{"link", "[site](https://example.com)", `href="https://example.com"`},
		{"raw html escaped", "<script>alert(1)</script>", "&lt;script&gt;"},
		{"inline tag kept as text", "uses <b>bold</b> tags", "&lt;b&gt;bold&lt;/b&gt;"},
		{"ampersand survives", "R&D experience", "R&amp;D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := string(r.renderBlock(tt.src))
			if !strings.Contains(got, tt.want) {
				t.Errorf("renderBlock(%q) = %q, want substring %q", tt.src, got, tt.want)
			}
			if strings.Contains(got, "<!--") {
				t.Errorf("renderBlock(%q) replaced content with a placeholder: %q", tt.src, got)
			}
		})
	}
}

func TestRenderInline(t *testing.T) {
	t.Parallel()
	r := newMarkdownRenderer()

	t.Run("unwraps single paragraph", func(t *testing.T) {
		t.Parallel()
		got := string(r.renderInline("just *one* line"))
		if strings.Contains(got, "<p>") {
			t.Errorf("inline render kept paragraph wrapper: %q", got)
		}
		if !strings.Contains(got, "<em>one</em>") {
			t.Errorf("inline formatting lost: %q", got)
		}
	})

	t.Run("multi-paragraph kept as-is", func(t *testing.T) {
		t.Parallel()
		got := string(r.renderInline("first\n\nsecond"))
		if !strings.Contains(got, "<p>") {
			t.Errorf("multi-block input should keep paragraphs: %q", got)
		}
	})
}
