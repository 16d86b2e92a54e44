package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// trimName strips surrounding whitespace. Nothing else is validated.
func trimName(raw string) string {
	return strings.TrimSpace(raw)
}

// resolveProjectDir returns the absolute project directory for name.
// An absolute name is used as is; a relative one is joined to workDir.
func resolveProjectDir(workDir, name string) (string, error) {
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}
	dir, err := filepath.Abs(filepath.Join(workDir, name))
	if err != nil {
		return "", fmt.Errorf("resolve project path %q: %w", name, err)
	}
	return dir, nil
}

// inspectTarget reports whether dir has no entries and whether it exists.
// A missing directory is empty, not an error.
func inspectTarget(dir string) (empty, exists bool, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, false, nil
		}
		return false, false, fmt.Errorf("read project directory: %w", err)
	}
	return len(entries) == 0, true, nil
}
