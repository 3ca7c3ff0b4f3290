package main

import (
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrInvalidPDF indicates the produced file failed structural validation.
var ErrInvalidPDF = errors.New("produced PDF failed validation")

// validatePDF checks that the file LibreOffice wrote is structurally
// valid PDF. Opt-in via --validate; by default the output is trusted.
func validatePDF(path string) error {
	if err := api.ValidateFile(path, nil); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPDF, path, err)
	}
	return nil
}
