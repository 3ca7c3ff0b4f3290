package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `
soffice:
  binary: /opt/libreoffice/program/soffice
  extraPaths:
    - /srv/lo/soffice
fonts:
  required:
    - Noto Sans CJK SC
output:
  defaultDir: /data/pdfs
convert:
  timeout: 2m
  workers: 4
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Soffice.Binary != "/opt/libreoffice/program/soffice" {
		t.Errorf("Binary = %q", cfg.Soffice.Binary)
	}
	if len(cfg.Soffice.ExtraPaths) != 1 || cfg.Soffice.ExtraPaths[0] != "/srv/lo/soffice" {
		t.Errorf("ExtraPaths = %v", cfg.Soffice.ExtraPaths)
	}
	if len(cfg.Fonts.Required) != 1 || cfg.Fonts.Required[0] != "Noto Sans CJK SC" {
		t.Errorf("Required = %v", cfg.Fonts.Required)
	}
	if cfg.Output.DefaultDir != "/data/pdfs" {
		t.Errorf("DefaultDir = %q", cfg.Output.DefaultDir)
	}

	d, err := cfg.Timeout()
	if err != nil || d != 2*time.Minute {
		t.Errorf("Timeout() = %v, %v", d, err)
	}
	if cfg.Convert.Workers != 4 {
		t.Errorf("Workers = %d", cfg.Convert.Workers)
	}
}

func TestLoadConfig_EmptyName(t *testing.T) {
	if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
		t.Fatalf("want ErrEmptyConfigName, got %v", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")
	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("want ErrConfigNotFound, got %v", err)
	}
}

func TestLoadConfig_UnknownNameSearchFails(t *testing.T) {
	_, err := LoadConfig("definitely-not-a-real-config-name")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("want ErrConfigNotFound, got %v", err)
	}
}

func TestLoadConfig_UnknownFieldRejected(t *testing.T) {
	path := writeConfig(t, `
soffice:
  binary: /usr/bin/soffice
sofice:
  binary: /typo
`)

	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
		t.Fatalf("want ErrConfigParse for unknown field, got %v", err)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "soffice: [unclosed")
	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
		t.Fatalf("want ErrConfigParse, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "defaults valid",
			cfg:  *DefaultConfig(),
		},
		{
			name:    "blank font family",
			cfg:     Config{Fonts: FontsConfig{Required: []string{"SimSun", "  "}}},
			wantErr: ErrEmptyFontName,
		},
		{
			name:    "bad timeout",
			cfg:     Config{Convert: ConvertConfig{Timeout: "soon"}},
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative timeout",
			cfg:     Config{Convert: ConvertConfig{Timeout: "-5s"}},
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative workers",
			cfg:     Config{Convert: ConvertConfig{Workers: -1}},
			wantErr: ErrInvalidWorkers,
		},
		{
			name:    "too many workers",
			cfg:     Config{Convert: ConvertConfig{Workers: MaxWorkers + 1}},
			wantErr: ErrInvalidWorkers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfig_Timeout_Empty(t *testing.T) {
	cfg := DefaultConfig()
	d, err := cfg.Timeout()
	if err != nil || d != 0 {
		t.Errorf("Timeout() = %v, %v; want 0, nil", d, err)
	}
}
