package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // OFFICE2PDF_CONFIG: config file path
	SofficeBin string        // OFFICE2PDF_SOFFICE_BIN: soffice executable path
	OutputDir  string        // OFFICE2PDF_OUTPUT_DIR: default output directory
	Timeout    time.Duration // OFFICE2PDF_TIMEOUT: per-document timeout
	Workers    int           // OFFICE2PDF_WORKERS: batch parallelism
}

// knownEnvVars lists valid OFFICE2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"OFFICE2PDF_CONFIG":      true,
	"OFFICE2PDF_SOFFICE_BIN": true,
	"OFFICE2PDF_OUTPUT_DIR":  true,
	"OFFICE2PDF_TIMEOUT":     true,
	"OFFICE2PDF_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid values are ignored rather than fatal; flags and config files
// remain the authoritative sources.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("OFFICE2PDF_CONFIG"),
		SofficeBin: getenv("OFFICE2PDF_SOFFICE_BIN"),
		OutputDir:  getenv("OFFICE2PDF_OUTPUT_DIR"),
	}

	if timeout := getenv("OFFICE2PDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("OFFICE2PDF_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	return cfg
}

// warnUnknownEnvVars prints a warning for OFFICE2PDF_* variables that
// are not recognized, catching typos like OFFICE2PDF_SOFICE_BIN.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "OFFICE2PDF_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s\n", name)
		}
	}
}
