package office2pdf

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/docsuite/office2pdf/internal/hints"
	"github.com/docsuite/office2pdf/internal/locations"
)

// Locator resolves the path to the soffice executable. Resolution runs
// on every call and is never cached, so an install that appears between
// conversions is picked up.
//
// Search order: explicit Binary override, the process search path, then
// the platform candidate table (plus any ExtraPaths, tried first).
// The first existing path wins; no executability check is performed.
type Locator struct {
	Binary     string   // explicit soffice path, skips the search when set
	ExtraPaths []string // additional candidates tried before the built-in table

	lookPath func(string) (string, error)
	getenv   func(string) string
	exists   func(string) bool
	goos     string
}

// NewLocator creates a Locator wired to the real host environment.
func NewLocator() *Locator {
	return &Locator{
		lookPath: exec.LookPath,
		getenv:   os.Getenv,
		exists:   pathExists,
		goos:     runtime.GOOS,
	}
}

// Find returns the resolved soffice path, or ErrSofficeNotFound with
// per-platform install guidance.
func (l *Locator) Find() (string, error) {
	if l.Binary != "" {
		if l.exists(l.Binary) {
			return l.Binary, nil
		}
		return "", fmt.Errorf("%w: %s does not exist", ErrSofficeNotFound, l.Binary)
	}

	if path, err := l.lookPath(SofficeName); err == nil {
		return path, nil
	}

	candidates, err := locations.Candidates(l.goos, l.getenv)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSofficeNotFound, err)
	}

	for _, path := range append(append([]string(nil), l.ExtraPaths...), candidates...) {
		if l.exists(path) {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w%s", ErrSofficeNotFound, hints.ForSofficeInstall(l.goos))
}

// pathExists reports whether the path exists, regardless of type.
// The table only needs existence; LibreOffice validates itself on launch.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
