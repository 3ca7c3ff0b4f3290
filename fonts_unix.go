//go:build !windows

package office2pdf

// newPlatformFontChecker selects the fontconfig-based checker on
// Unix-like systems.
func newPlatformFontChecker(runner CommandRunner, required []string) FontChecker {
	return &FontconfigChecker{Runner: runner, Required: required}
}
