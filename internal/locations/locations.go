// Package locations holds the candidate install-path table for the
// soffice binary. The table is data, not code: it lives in an embedded
// YAML file so new install locations can be added without touching the
// lookup logic.
package locations

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/docsuite/office2pdf/internal/yamlutil"
)

//go:embed soffice_paths.yaml
var rawTable []byte

// envRoot is a directory root read from an environment variable, with a
// fallback when the variable is unset.
type envRoot struct {
	Env      string `yaml:"env"`
	Fallback string `yaml:"fallback"`
}

// windowsTable describes Windows candidate paths: env-derived roots,
// fixed paths, and per-drive-letter expansion.
type windowsTable struct {
	EnvRoots      []envRoot `yaml:"envRoots"`
	EnvRelative   string    `yaml:"envRelative"`
	Fixed         []string  `yaml:"fixed"`
	DriveLetters  []string  `yaml:"driveLetters"`
	DriveRelative string    `yaml:"driveRelative"`
}

type table struct {
	Windows windowsTable `yaml:"windows"`
	Unix    []string     `yaml:"unix"`
}

var loadTable = sync.OnceValues(func() (*table, error) {
	var t table
	if err := yamlutil.UnmarshalStrict(rawTable, &t); err != nil {
		return nil, fmt.Errorf("parsing soffice path table: %w", err)
	}
	return &t, nil
})

// Candidates returns the ordered candidate paths for the given GOOS.
// getenv supplies environment lookups so callers can substitute a fake
// environment in tests. Unknown platforms fall back to the unix list.
func Candidates(goos string, getenv func(string) string) ([]string, error) {
	t, err := loadTable()
	if err != nil {
		return nil, err
	}

	if goos != "windows" {
		return append([]string(nil), t.Unix...), nil
	}

	w := t.Windows
	paths := make([]string, 0, len(w.EnvRoots)+len(w.Fixed)+len(w.DriveLetters))

	for _, root := range w.EnvRoots {
		dir := getenv(root.Env)
		if dir == "" {
			dir = root.Fallback
		}
		// Windows paths are joined with a literal backslash so the table
		// expands identically when exercised from non-Windows tests.
		paths = append(paths, dir+`\`+w.EnvRelative)
	}

	paths = append(paths, w.Fixed...)

	for _, letter := range w.DriveLetters {
		paths = append(paths, letter+`:\`+w.DriveRelative)
	}

	return paths, nil
}
