package office2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Input errors.
	ErrInputNotFound = errors.New("input file not found")

	// Environment errors.
	ErrFontMissing = errors.New("no required Chinese font installed")
	ErrFontProbe   = errors.New("font detection failed")

	// Conversion errors.
	ErrSofficeNotFound  = errors.New("LibreOffice not found")
	ErrConversionFailed = errors.New("LibreOffice convert failed")
	ErrOutputDir        = errors.New("failed to create output directory")
)
