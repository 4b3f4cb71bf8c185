package main

import (
	"errors"
	"fmt"
	"testing"

	resume2pdf "github.com/alnah/go-resume2pdf"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitFailure},
		{"missing input", ErrNoInput, ExitFailure},
		{"filesystem", resume2pdf.ErrFileSystem, ExitFailure},
		{"browser connect", resume2pdf.ErrBrowserConnect, ExitCatastrophic},
		{"pdf generation", resume2pdf.ErrPDFGeneration, ExitCatastrophic},
		{"pool closed", resume2pdf.ErrPoolClosed, ExitCatastrophic},
		{
			name: "wrapped browser error",
			err:  fmt.Errorf("generating: %w", resume2pdf.ErrBrowserConnect),
			want: ExitCatastrophic,
		},
		{
			name: "wrapped page load error",
			err:  fmt.Errorf("generating: %w", resume2pdf.ErrPageLoad),
			want: ExitCatastrophic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
