package office2pdf

import (
	"path/filepath"
	"strings"
)

// DefaultRequiredFonts lists the Chinese font families accepted by the
// strict pre-conversion check, in preference order. Conversion requires
// at least one of them so CJK text renders with real glyphs instead of
// tofu boxes.
var DefaultRequiredFonts = []string{
	"SimSun",
	"Microsoft YaHei",
	"Noto Sans CJK SC",
}

// SofficeName is the conversion binary resolved via the process search path.
const SofficeName = "soffice"

// Request describes a single document-to-PDF conversion.
type Request struct {
	InputPath string // office document to convert
	OutputDir string // directory the PDF is written to, created if absent
}

// Result holds the outcome of a successful conversion.
//
// PDFPath is derived from the input basename; the actual file is written
// by LibreOffice and is not verified here.
type Result struct {
	PDFPath string
	Stdout  string
	Stderr  string
}

// pdfOutputPath returns the path LibreOffice writes for the given input:
// the input basename with its extension replaced by .pdf, under outputDir.
func pdfOutputPath(inputPath, outputDir string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	return filepath.Join(outputDir, strings.TrimSuffix(base, ext)+".pdf")
}
