// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForMissingFonts returns a hint naming every acceptable font family.
func ForMissingFonts(families []string) string {
	if len(families) == 0 {
		return ""
	}
	return format("install at least one of: " + strings.Join(families, ", "))
}

// ForFontconfig returns a hint for fc-list launch failures.
func ForFontconfig() string {
	return format("install the 'fontconfig' package and Chinese fonts (e.g. fonts-noto-cjk)")
}

// ForSofficeInstall returns per-platform LibreOffice install guidance.
func ForSofficeInstall(goos string) string {
	switch goos {
	case "windows":
		return format("install LibreOffice from https://www.libreoffice.org/ or ensure soffice.exe is in PATH")
	case "darwin":
		return format("brew install libreoffice, or download from https://www.libreoffice.org/, or ensure soffice is in PATH")
	default:
		return formatHints([]string{
			"Ubuntu/Debian: sudo apt-get install libreoffice",
			"CentOS/RHEL: sudo yum install libreoffice",
			"or ensure soffice is in PATH",
		})
	}
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/office2pdf/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/office2pdf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
