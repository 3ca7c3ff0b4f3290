package main

import (
	"errors"
	"os"

	"github.com/docsuite/office2pdf"
	"github.com/docsuite/office2pdf/internal/config"
)

// Exit codes for the office2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess     = 0 // Successful conversion
	ExitGeneral     = 1 // General/unexpected error
	ExitUsage       = 2 // Invalid flags, config, or validation
	ExitIO          = 3 // File not found, permission denied
	ExitEnvironment = 4 // Missing fonts or font probing failure
	ExitConversion  = 5 // LibreOffice missing or exited nonzero
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Environment errors (exit 4)
	if errors.Is(err, office2pdf.ErrFontMissing) ||
		errors.Is(err, office2pdf.ErrFontProbe) {
		return ExitEnvironment
	}

	// Conversion errors (exit 5)
	if errors.Is(err, office2pdf.ErrSofficeNotFound) ||
		errors.Is(err, office2pdf.ErrConversionFailed) ||
		errors.Is(err, ErrInvalidPDF) {
		return ExitConversion
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, office2pdf.ErrInputNotFound) ||
		errors.Is(err, office2pdf.ErrOutputDir) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoDocuments) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyFontName) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}
