// Package config loads and validates YAML configuration for office2pdf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docsuite/office2pdf/internal/fileutil"
	"github.com/docsuite/office2pdf/internal/hints"
	"github.com/docsuite/office2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrEmptyFontName   = errors.New("font family name cannot be empty")
	ErrInvalidTimeout  = errors.New("invalid timeout")
	ErrInvalidWorkers  = errors.New("invalid worker count")
)

// MaxWorkers caps CLI batch parallelism; each worker is a full
// LibreOffice process.
const MaxWorkers = 16

// Config holds all configuration for document conversion.
type Config struct {
	Soffice SofficeConfig `yaml:"soffice"`
	Fonts   FontsConfig   `yaml:"fonts"`
	Output  OutputConfig  `yaml:"output"`
	Convert ConvertConfig `yaml:"convert"`
}

// SofficeConfig defines how the LibreOffice binary is located.
type SofficeConfig struct {
	Binary     string   `yaml:"binary"`     // explicit path (empty = discover)
	ExtraPaths []string `yaml:"extraPaths"` // candidates tried before the built-in table
}

// FontsConfig defines the font pre-check behavior.
type FontsConfig struct {
	Required []string `yaml:"required"` // accepted families (empty = built-in defaults)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // default output directory (empty = alongside input)
}

// ConvertConfig defines conversion run options.
type ConvertConfig struct {
	Timeout string `yaml:"timeout"` // Go duration, e.g. "2m" (empty = no timeout)
	Workers int    `yaml:"workers"` // batch parallelism (0 = sequential)
}

// DefaultConfig returns the zero configuration: discover soffice,
// built-in font list, no timeout, sequential batches.
func DefaultConfig() *Config {
	return &Config{}
}

// Timeout parses the configured timeout. Zero means none.
func (c *Config) Timeout() (time.Duration, error) {
	if c.Convert.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Convert.Timeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, c.Convert.Timeout)
	}
	return d, nil
}

// Validate checks the loaded configuration for well-formedness.
func (c *Config) Validate() error {
	for _, family := range c.Fonts.Required {
		if strings.TrimSpace(family) == "" {
			return ErrEmptyFontName
		}
	}

	if _, err := c.Timeout(); err != nil {
		return err
	}

	if c.Convert.Workers < 0 || c.Convert.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (0-%d)", ErrInvalidWorkers, c.Convert.Workers, MaxWorkers)
	}

	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/office2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "office2pdf", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s%s",
		ErrConfigNotFound, strings.Join(triedPaths, ", "), hints.ForConfigNotFound(triedPaths))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
