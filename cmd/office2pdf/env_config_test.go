package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fakeGetenv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadEnvConfig(t *testing.T) {
	cfg := loadEnvConfig(fakeGetenv(map[string]string{
		"OFFICE2PDF_CONFIG":      "ci",
		"OFFICE2PDF_SOFFICE_BIN": "/opt/lo/soffice",
		"OFFICE2PDF_OUTPUT_DIR":  "/data/pdfs",
		"OFFICE2PDF_TIMEOUT":     "90s",
		"OFFICE2PDF_WORKERS":     "3",
	}))

	if cfg.ConfigPath != "ci" {
		t.Errorf("ConfigPath = %q", cfg.ConfigPath)
	}
	if cfg.SofficeBin != "/opt/lo/soffice" {
		t.Errorf("SofficeBin = %q", cfg.SofficeBin)
	}
	if cfg.OutputDir != "/data/pdfs" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
}

func TestLoadEnvConfig_InvalidValuesIgnored(t *testing.T) {
	cfg := loadEnvConfig(fakeGetenv(map[string]string{
		"OFFICE2PDF_TIMEOUT": "whenever",
		"OFFICE2PDF_WORKERS": "-2",
	}))

	if cfg.Timeout != 0 {
		t.Errorf("invalid timeout not ignored: %v", cfg.Timeout)
	}
	if cfg.Workers != 0 {
		t.Errorf("invalid workers not ignored: %d", cfg.Workers)
	}
}

func TestLoadEnvConfig_Empty(t *testing.T) {
	cfg := loadEnvConfig(fakeGetenv(nil))
	if *cfg != (envConfig{}) {
		t.Errorf("empty environment produced %+v", cfg)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"OFFICE2PDF_SOFFICE_BIN=/usr/bin/soffice",
		"OFFICE2PDF_SOFICE_BIN=/typo",
		"PATH=/usr/bin",
		"HOME=/root",
	})

	out := buf.String()
	if !strings.Contains(out, "OFFICE2PDF_SOFICE_BIN") {
		t.Errorf("typo not flagged: %q", out)
	}
	if strings.Contains(out, "OFFICE2PDF_SOFFICE_BIN=") || strings.Contains(out, "PATH") {
		t.Errorf("known or unrelated variables flagged: %q", out)
	}
}
