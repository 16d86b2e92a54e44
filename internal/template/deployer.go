package template

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mushin-app/create-mushin/internal/defs"
	"github.com/mushin-app/create-mushin/internal/ui"
)

// Deployer copies the top-level files of a template into a project root.
type Deployer interface {
	// Deploy writes every top-level regular file of the template into
	// projectRoot byte for byte, overwriting same-named files.
	// Directories in the template are skipped, not recursed into.
	Deploy(ctx context.Context, projectRoot string) (*DeployResult, error)

	// ListTemplates returns the names of the files Deploy would write.
	ListTemplates() ([]string, error)
}

// DeployResult lists what a Deploy call did.
type DeployResult struct {
	Files   []string // written, in lexical order
	Skipped []string // non-file entries that were ignored
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	fsys     fs.FS
	progress ui.Progress // optional
	logger   *slog.Logger
}

// DeployerOption configures a Deployer.
type DeployerOption func(*deployer)

// WithProgress reports each written file on a progress bar.
func WithProgress(p ui.Progress) DeployerOption {
	return func(d *deployer) { d.progress = p }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) DeployerOption {
	return func(d *deployer) { d.logger = l }
}

// NewDeployer creates a Deployer backed by the given filesystem.
// In production the fs.FS comes from os.DirFS or go:embed; in tests use
// testing/fstest.MapFS.
func NewDeployer(fsys fs.FS, opts ...DeployerOption) Deployer {
	d := &deployer{fsys: fsys}
	for _, o := range opts {
		o(d)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d
}

// Deploy copies the template's top-level files into projectRoot.
func (d *deployer) Deploy(ctx context.Context, projectRoot string) (*DeployResult, error) {
	projectRoot = filepath.Clean(projectRoot)

	info, err := os.Stat(projectRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTargetMissing, projectRoot)
		}
		return nil, fmt.Errorf("stat project directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project path %s is not a directory", projectRoot)
	}

	files, skipped, err := d.classify()
	if err != nil {
		return nil, err
	}
	for _, name := range skipped {
		d.logger.Debug("skipping non-file template entry", "name", name)
	}

	result := &DeployResult{Skipped: skipped}

	var bar ui.ProgressBar
	if d.progress != nil && len(files) > 0 {
		bar = d.progress.Start("Copying template files", len(files))
		defer bar.Done()
	}

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := validateDeployPath(projectRoot, name); err != nil {
			return result, err
		}

		content, err := fs.ReadFile(d.fsys, name)
		if err != nil {
			return result, fmt.Errorf("template deploy read %q: %w", name, err)
		}

		destPath := filepath.Join(projectRoot, name)
		if err := os.WriteFile(destPath, content, defs.FilePerm); err != nil {
			return result, fmt.Errorf("template deploy write %q: %w", destPath, err)
		}

		result.Files = append(result.Files, name)
		d.logger.Debug("template file written", "name", name, "bytes", len(content))

		if bar != nil {
			bar.SetTitle(name)
			bar.Increment(1)
		}
	}

	return result, nil
}

// ListTemplates returns the top-level regular file names of the template.
func (d *deployer) ListTemplates() ([]string, error) {
	files, _, err := d.classify()
	return files, err
}

// classify splits the template's top-level entries into regular files and
// everything else. Symlinks are followed, so a link to a file counts as a file.
func (d *deployer) classify() (files, skipped []string, err error) {
	entries, err := fs.ReadDir(d.fsys, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("read template directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		info, err := fs.Stat(d.fsys, name)
		if err != nil {
			return nil, nil, fmt.Errorf("stat template entry %q: %w", name, err)
		}
		if info.Mode().IsRegular() {
			files = append(files, name)
		} else {
			skipped = append(skipped, name)
		}
	}
	return files, skipped, nil
}

// validateDeployPath ensures a template entry does not escape projectRoot.
func validateDeployPath(projectRoot, name string) error {
	cleaned := filepath.Clean(filepath.FromSlash(name))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, name)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, name)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}
	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, name)
	}
	return nil
}
