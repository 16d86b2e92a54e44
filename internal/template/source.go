package template

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mushin-app/create-mushin/internal/defs"
)

// OriginEmbedded is the Origin of the template compiled into the binary.
const OriginEmbedded = "embedded"

// Source is a read-only template file set.
type Source struct {
	FS     fs.FS
	Origin string // absolute directory path, or OriginEmbedded
}

// Resolve locates the template. A non-empty override must name an existing
// directory. Otherwise the directory shipped next to the executable is used
// when present, and the embedded template when not.
func Resolve(override string) (*Source, error) {
	exe, err := os.Executable()
	if err != nil {
		exe = ""
	}
	return resolve(override, exe)
}

func resolve(override, exePath string) (*Source, error) {
	if override != "" {
		dir, err := filepath.Abs(override)
		if err != nil {
			return nil, fmt.Errorf("resolve template path %q: %w", override, err)
		}
		if !isDir(dir) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, dir)
		}
		return dirSource(dir), nil
	}

	for _, dir := range installCandidates(exePath) {
		if isDir(dir) {
			return dirSource(dir), nil
		}
	}

	fsys, err := EmbeddedTemplates()
	if err != nil {
		return nil, fmt.Errorf("load embedded template: %w", err)
	}
	return &Source{FS: fsys, Origin: OriginEmbedded}, nil
}

// installCandidates lists template directories relative to the binary:
// <root>/template-mushin for a binary in <root>/bin or in <root> itself.
func installCandidates(exePath string) []string {
	if exePath == "" {
		return nil
	}
	if resolved, err := filepath.EvalSymlinks(exePath); err == nil {
		exePath = resolved
	}
	binDir := filepath.Dir(exePath)
	return []string{
		filepath.Join(binDir, "..", defs.TemplateDirName),
		filepath.Join(binDir, defs.TemplateDirName),
	}
}

func dirSource(dir string) *Source {
	dir = filepath.Clean(dir)
	return &Source{FS: os.DirFS(dir), Origin: dir}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
