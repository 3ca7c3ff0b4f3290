package main

import (
	"io"
	"os"
	"time"

	"github.com/docsuite/office2pdf/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, environment lookups, and configuration.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	Config *config.Config
}

// DefaultEnv returns production dependencies.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		Config: config.DefaultConfig(),
	}
}
