package office2pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/docsuite/office2pdf/internal/fileutil"
	"github.com/docsuite/office2pdf/internal/hints"
)

// Compile-time interface implementation checks.
var (
	_ CommandRunner = (*ExecRunner)(nil)
	_ FontChecker   = (*FontconfigChecker)(nil)
	_ FontChecker   = (*FontDirChecker)(nil)
)

// Converter turns office documents into PDFs by driving a headless
// LibreOffice instance. Create with New, then call Convert per document.
// A Converter is stateless and safe for concurrent use as long as
// callers manage output directory collisions.
type Converter struct {
	runner        CommandRunner
	fonts         FontChecker
	locator       *Locator
	requiredFonts []string
}

// Option customizes a Converter.
type Option func(*Converter)

// WithRunner replaces the subprocess runner (used by tests).
func WithRunner(r CommandRunner) Option {
	return func(c *Converter) { c.runner = r }
}

// WithFontChecker replaces the platform font checker.
func WithFontChecker(fc FontChecker) Option {
	return func(c *Converter) { c.fonts = fc }
}

// WithLocator replaces the executable locator.
func WithLocator(l *Locator) Option {
	return func(c *Converter) { c.locator = l }
}

// WithSofficeBinary pins the soffice executable path, skipping discovery.
func WithSofficeBinary(path string) Option {
	return func(c *Converter) { c.locator.Binary = path }
}

// WithExtraPaths adds candidate install paths tried before the built-in table.
func WithExtraPaths(paths []string) Option {
	return func(c *Converter) { c.locator.ExtraPaths = paths }
}

// WithRequiredFonts overrides the accepted font families.
func WithRequiredFonts(families []string) Option {
	return func(c *Converter) { c.requiredFonts = families }
}

// New creates a Converter with default configuration.
func New(opts ...Option) *Converter {
	c := &Converter{
		runner:        &ExecRunner{},
		locator:       NewLocator(),
		requiredFonts: DefaultRequiredFonts,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create the platform font checker if not injected (e.g., by tests)
	if c.fonts == nil {
		c.fonts = newPlatformFontChecker(c.runner, c.requiredFonts)
	}

	return c
}

// CheckFonts runs the font pre-check alone, without converting.
// Useful for environment diagnostics.
func (c *Converter) CheckFonts(ctx context.Context) error {
	return c.fonts.Check(ctx)
}

// Convert converts a single office document to PDF in req.OutputDir.
//
// The sequence is a linear chain of checks with early-exit failure:
// input file, output directory, font availability, executable location,
// then the blocking soffice invocation. The soffice path is resolved
// fresh on every call. No timeout is enforced; cancel ctx to bound a
// hung conversion.
func (c *Converter) Convert(ctx context.Context, req Request) (*Result, error) {
	if !fileutil.FileExists(req.InputPath) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, req.InputPath)
	}

	if err := fileutil.EnsureDir(req.OutputDir); err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrOutputDir, err, hints.ForOutputDirectory())
	}

	// Strict pre-check: conversion without a CJK font would silently
	// produce tofu glyphs, so a missing font is a hard failure.
	if err := c.fonts.Check(ctx); err != nil {
		return nil, err
	}

	soffice, err := c.locator.Find()
	if err != nil {
		return nil, err
	}

	stdout, stderr, err := c.runner.Run(ctx, soffice, sofficeArgs(req.InputPath, req.OutputDir)...)
	if err != nil {
		detail := strings.TrimSpace(stderr)
		if detail == "" {
			detail = err.Error()
		}
		return nil, fmt.Errorf("%w: %s", ErrConversionFailed, detail)
	}

	return &Result{
		PDFPath: pdfOutputPath(req.InputPath, req.OutputDir),
		Stdout:  stdout,
		Stderr:  stderr,
	}, nil
}

// sofficeArgs is the fixed argument template for headless conversion.
func sofficeArgs(inputPath, outputDir string) []string {
	return []string{
		"--headless",
		"--norestore",
		"--invisible",
		"--convert-to", "pdf",
		"--outdir", outputDir,
		inputPath,
	}
}
