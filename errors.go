package resume2pdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrNilResume      = errors.New("resume document cannot be nil")
	ErrEmptyName      = errors.New("resume identity name cannot be empty")
	ErrNoOutputPath   = errors.New("output path cannot be empty")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrFileSystem     = errors.New("filesystem operation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPoolClosed     = errors.New("renderer pool is shut down")
	ErrTemplateRender = errors.New("template rendering failed")

	// Determinism configuration validation errors.
	ErrInvalidTimestamp = errors.New("invalid fixed timestamp")
)

// FileSystemError reports a failed filesystem operation together with the
// offending path, so callers can surface it verbatim.
type FileSystemError struct {
	Op   string // "write", "read", "stat"
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the ErrFileSystem sentinel and the underlying cause,
// so errors.Is works against either.
func (e *FileSystemError) Unwrap() []error {
	return []error{ErrFileSystem, e.Err}
}

// PDFGenerationError reports a failed render or export with the pipeline
// stage it occurred in and the underlying renderer message.
type PDFGenerationError struct {
	Stage string // "content-set", "export", "acquire"
	Err   error
}

func (e *PDFGenerationError) Error() string {
	return fmt.Sprintf("PDF generation failed during %s: %v", e.Stage, e.Err)
}

// Unwrap exposes both the ErrPDFGeneration sentinel and the underlying cause.
func (e *PDFGenerationError) Unwrap() []error {
	return []error{ErrPDFGeneration, e.Err}
}

// fsErr wraps an OS-level error into a FileSystemError.
func fsErr(op, path string, err error) error {
	return &FileSystemError{Op: op, Path: path, Err: err}
}

// pdfErr wraps a renderer-level error into a PDFGenerationError.
func pdfErr(stage string, err error) error {
	return &PDFGenerationError{Stage: stage, Err: err}
}
