package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/docsuite/office2pdf"
	"github.com/docsuite/office2pdf/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoDocuments        = errors.New("no office documents found")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// officeExtensions lists the document types offered to LibreOffice for
// batch discovery. Single-file input skips this filter; soffice decides
// what it can open.
var officeExtensions = map[string]bool{
	".doc":  true,
	".docx": true,
	".ppt":  true,
	".pptx": true,
	".xls":  true,
	".xlsx": true,
	".odt":  true,
	".odp":  true,
	".ods":  true,
	".rtf":  true,
	".wps":  true,
}

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, req office2pdf.Request) (*office2pdf.Result, error)
}

// Compile-time interface implementation check.
var _ Converter = (*office2pdf.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath string
	PDFPath   string
	Err       error
	Duration  time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, os.Environ())

	cfg, err := resolveConfig(flags, envCfg, env)
	if err != nil {
		return err
	}

	workers, err := resolveWorkers(flags.workers, envCfg, cfg)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg, cfg)
	if err != nil {
		return err
	}

	if len(positionalArgs) == 0 {
		return ErrNoInput
	}
	inputPath := positionalArgs[0]

	inputs, err := discoverInputs(inputPath)
	if err != nil {
		return err
	}

	conv := newConverter(flags, envCfg, cfg)

	results := convertAll(ctx, conv, inputs, batchOptions{
		outputDir: resolveOutputDir(flags.output, envCfg, cfg),
		workers:   workers,
		timeout:   timeout,
		validate:  flags.validate,
	})

	return reportResults(results, flags, env)
}

// batchOptions groups per-run settings shared across files.
type batchOptions struct {
	outputDir string // empty = alongside each input
	workers   int
	timeout   time.Duration
	validate  bool
}

// resolveConfig loads the config file if requested, otherwise defaults.
// Precedence for the file choice: --config flag, OFFICE2PDF_CONFIG.
func resolveConfig(flags *convertFlags, envCfg *envConfig, env *Environment) (*config.Config, error) {
	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return env.Config, nil
	}
	return config.LoadConfig(name)
}

// resolveWorkers applies flag > env > config precedence and validates.
func resolveWorkers(flagWorkers int, envCfg *envConfig, cfg *config.Config) (int, error) {
	n := flagWorkers
	if n == 0 {
		n = envCfg.Workers
	}
	if n == 0 {
		n = cfg.Convert.Workers
	}
	if n < 0 || n > config.MaxWorkers {
		return 0, fmt.Errorf("%w: %d (0-%d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	if n == 0 {
		n = 1
	}
	return n, nil
}

// resolveTimeout applies flag > env > config precedence. Zero = none.
func resolveTimeout(flagTimeout string, envCfg *envConfig, cfg *config.Config) (time.Duration, error) {
	if flagTimeout != "" {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil || d <= 0 {
			return 0, fmt.Errorf("%w: %q", config.ErrInvalidTimeout, flagTimeout)
		}
		return d, nil
	}
	if envCfg.Timeout > 0 {
		return envCfg.Timeout, nil
	}
	return cfg.Timeout()
}

// resolveOutputDir applies flag > env > config precedence.
// Empty means each PDF lands alongside its input.
func resolveOutputDir(flagOutput string, envCfg *envConfig, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	if envCfg.OutputDir != "" {
		return envCfg.OutputDir
	}
	return cfg.Output.DefaultDir
}

// newConverter builds the library converter from resolved settings.
// Binary precedence: --soffice flag, OFFICE2PDF_SOFFICE_BIN, config.
func newConverter(flags *convertFlags, envCfg *envConfig, cfg *config.Config) Converter {
	var opts []office2pdf.Option

	binary := flags.soffice
	if binary == "" {
		binary = envCfg.SofficeBin
	}
	if binary == "" {
		binary = cfg.Soffice.Binary
	}
	if binary != "" {
		opts = append(opts, office2pdf.WithSofficeBinary(binary))
	}

	if len(cfg.Soffice.ExtraPaths) > 0 {
		opts = append(opts, office2pdf.WithExtraPaths(cfg.Soffice.ExtraPaths))
	}
	if len(cfg.Fonts.Required) > 0 {
		opts = append(opts, office2pdf.WithRequiredFonts(cfg.Fonts.Required))
	}

	return office2pdf.New(opts...)
}

// discoverInputs expands the input argument into concrete files.
// A file is taken as-is; a directory is walked for office documents.
func discoverInputs(inputPath string) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", office2pdf.ErrInputNotFound, inputPath)
	}

	if !info.IsDir() {
		return []string{inputPath}, nil
	}

	var files []string
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories like .git
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if officeExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", inputPath, err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocuments, inputPath)
	}

	sort.Strings(files)
	return files, nil
}

// convertOne runs a single conversion with optional timeout and validation.
func convertOne(ctx context.Context, conv Converter, inputPath string, opts batchOptions) ConversionResult {
	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := conv.Convert(ctx, office2pdf.Request{
		InputPath: inputPath,
		OutputDir: outputDir,
	})
	res := ConversionResult{InputPath: inputPath, Duration: time.Since(start)}

	if err != nil {
		res.Err = err
		return res
	}

	res.PDFPath = result.PDFPath
	if opts.validate {
		res.Err = validatePDF(result.PDFPath)
	}
	return res
}

// reportResults prints per-file outcomes and returns the first error.
func reportResults(results []ConversionResult, flags *convertFlags, env *Environment) error {
	var failed int
	var firstErr error

	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
			fmt.Fprintf(env.Stderr, "failed: %s: %v\n", r.InputPath, r.Err)
		case flags.common.verbose:
			fmt.Fprintf(env.Stdout, "Created %s (%s)\n", r.PDFPath, r.Duration.Round(time.Millisecond))
		case !flags.common.quiet:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.PDFPath)
		}
	}

	if failed > 0 {
		if len(results) > 1 {
			fmt.Fprintf(env.Stderr, "%d of %d conversions failed\n", failed, len(results))
		}
		return firstErr
	}
	return nil
}
