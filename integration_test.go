//go:build integration

package resume2pdf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Integration tests drive a real headless browser. They share one pool to
// keep process churn down; set ROD_BROWSER_BIN to use a pre-installed
// browser in containers.
var testPool *RendererPool

func TestMain(m *testing.M) {
	testPool = NewRendererPool(WithPoolIdleTimeout(30 * time.Second))
	code := m.Run()
	_ = testPool.Shutdown()
	os.Exit(code)
}

func newIntegrationGenerator(t *testing.T) *Generator {
	t.Helper()
	return NewGenerator(WithRendererPool(testPool))
}

func TestIntegration_GeneratePDF(t *testing.T) {
	g := newIntegrationGenerator(t)
	path := filepath.Join(t.TempDir(), "resume.pdf")

	opts := DefaultRenderOptions()
	opts.OutputPath = path

	if err := g.GeneratePDF(context.Background(), sampleResume(), opts); err != nil {
		t.Fatalf("GeneratePDF: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("artifact is empty")
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("artifact does not start with a PDF header")
	}
	if bytes.Contains(data, []byte("/CreationDate (D:")) {
		t.Error("normalized artifact still carries a creation date")
	}
	if !bytes.Contains(data, []byte("John Doe - Resume")) {
		t.Error("artifact missing derived title metadata")
	}
}

// Two runs of identical input separated in time must agree byte for byte.
func TestIntegration_Determinism(t *testing.T) {
	g := newIntegrationGenerator(t)
	dir := t.TempDir()
	resume := sampleResume()

	render := func(name string) []byte {
		opts := DefaultRenderOptions()
		opts.OutputPath = filepath.Join(dir, name)
		if err := g.GeneratePDF(context.Background(), resume, opts); err != nil {
			t.Fatalf("GeneratePDF %s: %v", name, err)
		}
		data, err := os.ReadFile(opts.OutputPath)
		if err != nil {
			t.Fatal(err)
		}
		return data
	}

	first := render("a.pdf")
	time.Sleep(600 * time.Millisecond)
	second := render("b.pdf")

	if !bytes.Equal(first, second) {
		t.Errorf("runs differ: %d vs %d bytes", len(first), len(second))
	}
}

func TestIntegration_ATSMode(t *testing.T) {
	g := newIntegrationGenerator(t)

	opts := DefaultRenderOptions()
	opts.ATSMode = true
	opts.OutputPath = filepath.Join(t.TempDir(), "ats.pdf")

	if err := g.GeneratePDF(context.Background(), sampleResume(), opts); err != nil {
		t.Fatalf("GeneratePDF ATS: %v", err)
	}
}

// A killed browser process must be replaced transparently on the next
// acquisition; callers never observe process death.
func TestIntegration_PoolRecoversFromBrowserDeath(t *testing.T) {
	g := newIntegrationGenerator(t)
	dir := t.TempDir()

	opts := DefaultRenderOptions()
	opts.OutputPath = filepath.Join(dir, "before.pdf")
	if err := g.GeneratePDF(context.Background(), sampleResume(), opts); err != nil {
		t.Fatalf("initial generate: %v", err)
	}

	testPool.mu.Lock()
	if testPool.browser != nil {
		_ = testPool.browser.Close()
	}
	testPool.mu.Unlock()

	opts.OutputPath = filepath.Join(dir, "after.pdf")
	if err := g.GeneratePDF(context.Background(), sampleResume(), opts); err != nil {
		t.Fatalf("generate after browser death: %v", err)
	}
}

func TestIntegration_VerifyOutput(t *testing.T) {
	g := NewGenerator(WithRendererPool(testPool), WithVerifyOutput())

	opts := DefaultRenderOptions()
	opts.OutputPath = filepath.Join(t.TempDir(), "verified.pdf")

	if err := g.GeneratePDF(context.Background(), sampleResume(), opts); err != nil {
		t.Fatalf("GeneratePDF with verification: %v", err)
	}
}
