package main

import (
	"errors"

	resume2pdf "github.com/alnah/go-resume2pdf"
)

// Exit codes for the resume2pdf CLI.
// 0 = success, 1 = normal failure (bad input, config, filesystem),
// 2 = catastrophic renderer failure (browser launch/export failed even
// after the pool's internal recreate).
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitCatastrophic = 2
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, resume2pdf.ErrBrowserConnect) ||
		errors.Is(err, resume2pdf.ErrPageCreate) ||
		errors.Is(err, resume2pdf.ErrPageLoad) ||
		errors.Is(err, resume2pdf.ErrPoolClosed) ||
		errors.Is(err, resume2pdf.ErrPDFGeneration) {
		return ExitCatastrophic
	}

	return ExitFailure
}
