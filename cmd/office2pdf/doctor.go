package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/docsuite/office2pdf"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"` // "ready", "warnings", "errors"
	Soffice  sofficeInfo `json:"soffice"`
	Fonts    fontsInfo   `json:"fonts"`
	Env      envInfo     `json:"environment"`
	System   systemInfo  `json:"system"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// sofficeInfo holds LibreOffice detection results.
type sofficeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// fontsInfo holds CJK font detection results.
type fontsInfo struct {
	Found    bool     `json:"found"`
	Required []string `json:"required"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	SofficeBin string `json:"office2pdf_soffice_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Fonts:  fontsInfo{Required: office2pdf.DefaultRequiredFonts},
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			SofficeBin: env.Getenv("OFFICE2PDF_SOFFICE_BIN"),
		},
	}

	checkSoffice(result)
	checkFonts(result)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkSoffice detects a LibreOffice installation.
func checkSoffice(result *doctorResult) {
	locator := office2pdf.NewLocator()
	locator.Binary = result.Env.SofficeBin

	path, err := locator.Find()
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}

	result.Soffice.Found = true
	result.Soffice.Path = path

	// Probe the version; failure is only a warning since headless
	// conversion can still work.
	runner := &office2pdf.ExecRunner{}
	stdout, _, err := runner.Run(context.Background(), path, "--version")
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("could not get LibreOffice version: %v", err))
		return
	}
	result.Soffice.Version = strings.TrimSpace(stdout)
}

// checkFonts runs the platform CJK font check.
func checkFonts(result *doctorResult) {
	conv := office2pdf.New()
	if err := conv.CheckFonts(context.Background()); err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}
	result.Fonts.Found = true
}

// checkSystem verifies basic system requirements.
func checkSystem(result *doctorResult) {
	tmpFile, err := os.CreateTemp("", "office2pdf-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("temp directory not writable: %v", err))
		return
	}
	_ = tmpFile.Close()
	_ = os.Remove(tmpFile.Name())
	result.System.TempWritable = true
}

// printDoctorResult writes a human-readable diagnostic report.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintln(w, "office2pdf doctor")
	fmt.Fprintln(w)

	if result.Soffice.Found {
		fmt.Fprintf(w, "  LibreOffice:  %s\n", result.Soffice.Path)
		if result.Soffice.Version != "" {
			fmt.Fprintf(w, "  Version:      %s\n", result.Soffice.Version)
		}
	} else {
		fmt.Fprintln(w, "  LibreOffice:  not found")
	}

	if result.Fonts.Found {
		fmt.Fprintf(w, "  CJK fonts:    ok (one of: %s)\n", strings.Join(result.Fonts.Required, ", "))
	} else {
		fmt.Fprintln(w, "  CJK fonts:    missing")
	}

	fmt.Fprintf(w, "  Platform:     %s/%s\n", result.Env.OS, result.Env.Arch)
	fmt.Fprintf(w, "  Temp dir:     writable=%v\n", result.System.TempWritable)

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "\n  warning: %s\n", warning)
	}
	for _, errMsg := range result.Errors {
		fmt.Fprintf(w, "\n  error: %s\n", errMsg)
	}

	switch result.Status {
	case "ready":
		fmt.Fprintln(w, "\nStatus: ready")
	case "warnings":
		fmt.Fprintln(w, "\nStatus: ready with warnings")
	case "errors":
		fmt.Fprintln(w, "\nStatus: not ready")
	}
}
