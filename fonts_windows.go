//go:build windows

package office2pdf

import (
	"os"
	"path/filepath"
)

// newPlatformFontChecker selects the font-directory checker on Windows.
func newPlatformFontChecker(runner CommandRunner, required []string) FontChecker {
	root := os.Getenv("SYSTEMROOT")
	if root == "" {
		root = `C:\Windows`
	}
	return &FontDirChecker{Dir: filepath.Join(root, "Fonts"), Required: required}
}
