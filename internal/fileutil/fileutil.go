// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"strings"
)

// DirPermissions is the mode used for created output directories.
const DirPermissions = 0o750

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// EnsureDir creates the directory and any missing parents. It is
// idempotent: an existing directory is not an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DirPermissions); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// IsFilePath returns true if the string looks like a file path rather
// than a name. A string containing path separators (/, \) is treated as
// a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
