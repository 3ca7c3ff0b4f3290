package office2pdf

import (
	"errors"
	"strings"
	"testing"
)

func noLookPath(string) (string, error) { return "", errors.New("not in PATH") }
func emptyGetenv(string) string         { return "" }

func existsOnly(paths ...string) func(string) bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return func(p string) bool { return set[p] }
}

func TestLocator_Find_BinaryOverride(t *testing.T) {
	l := &Locator{
		Binary: "/opt/custom/soffice",
		exists: existsOnly("/opt/custom/soffice"),
	}

	path, err := l.Find()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/opt/custom/soffice" {
		t.Errorf("path = %q", path)
	}
}

func TestLocator_Find_BinaryOverrideMissing(t *testing.T) {
	l := &Locator{
		Binary: "/opt/custom/soffice",
		exists: existsOnly(),
	}

	_, err := l.Find()
	if !errors.Is(err, ErrSofficeNotFound) {
		t.Fatalf("want ErrSofficeNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "/opt/custom/soffice") {
		t.Errorf("error missing override path: %v", err)
	}
}

func TestLocator_Find_SearchPathWins(t *testing.T) {
	l := &Locator{
		lookPath: func(name string) (string, error) {
			if name != SofficeName {
				t.Errorf("lookPath called with %q", name)
			}
			return "/usr/local/bin/soffice", nil
		},
		getenv: emptyGetenv,
		exists: existsOnly("/usr/bin/soffice"), // candidate also exists, PATH must win
		goos:   "linux",
	}

	path, err := l.Find()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/usr/local/bin/soffice" {
		t.Errorf("path = %q, want PATH resolution", path)
	}
}

func TestLocator_Find_UnixCandidates(t *testing.T) {
	tests := []struct {
		name     string
		existing string
	}{
		{"usr bin", "/usr/bin/soffice"},
		{"opt install", "/opt/libreoffice/program/soffice"},
		{"macos app bundle", "/Applications/LibreOffice.app/Contents/MacOS/soffice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Locator{
				lookPath: noLookPath,
				getenv:   emptyGetenv,
				exists:   existsOnly(tt.existing),
				goos:     "linux",
			}

			path, err := l.Find()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if path != tt.existing {
				t.Errorf("path = %q, want %q", path, tt.existing)
			}
		})
	}
}

func TestLocator_Find_WindowsEnvExpansion(t *testing.T) {
	want := `D:\Programs\LibreOffice\program\soffice.exe`
	l := &Locator{
		lookPath: noLookPath,
		getenv: func(key string) string {
			if key == "PROGRAMFILES" {
				return `D:\Programs`
			}
			return ""
		},
		exists: existsOnly(want),
		goos:   "windows",
	}

	path, err := l.Find()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestLocator_Find_WindowsDriveLetters(t *testing.T) {
	want := `F:\LibreOffice\program\soffice.exe`
	l := &Locator{
		lookPath: noLookPath,
		getenv:   emptyGetenv,
		exists:   existsOnly(want),
		goos:     "windows",
	}

	path, err := l.Find()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestLocator_Find_ExtraPathsBeforeTable(t *testing.T) {
	extra := "/srv/libreoffice/soffice"
	l := &Locator{
		ExtraPaths: []string{extra},
		lookPath:   noLookPath,
		getenv:     emptyGetenv,
		exists:     existsOnly(extra, "/usr/bin/soffice"),
		goos:       "linux",
	}

	path, err := l.Find()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != extra {
		t.Errorf("path = %q, want extra path %q", path, extra)
	}
}

func TestLocator_Find_NotFoundGuidance(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "apt-get install libreoffice"},
		{"darwin", "brew install libreoffice"},
		{"windows", "https://www.libreoffice.org/"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			l := &Locator{
				lookPath: noLookPath,
				getenv:   emptyGetenv,
				exists:   existsOnly(),
				goos:     tt.goos,
			}

			_, err := l.Find()
			if !errors.Is(err, ErrSofficeNotFound) {
				t.Fatalf("want ErrSofficeNotFound, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error missing %q: %v", tt.want, err)
			}
		})
	}
}

func TestNewLocator_ResolvesPerCall(t *testing.T) {
	// Resolution must not cache: two calls observe changed state.
	available := false
	l := &Locator{
		lookPath: noLookPath,
		getenv:   emptyGetenv,
		exists:   func(string) bool { return available },
		goos:     "linux",
	}

	if _, err := l.Find(); err == nil {
		t.Fatal("expected failure before install")
	}

	available = true
	if _, err := l.Find(); err != nil {
		t.Fatalf("second call did not observe new install: %v", err)
	}
}
