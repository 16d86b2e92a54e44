package template

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Override(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.txt"), []byte("x"), 0o644))

	src, err := resolve(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(dir), src.Origin)

	data, err := fs.ReadFile(src.FS, "x.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestResolve_OverrideMissing(t *testing.T) {
	_, err := resolve(filepath.Join(t.TempDir(), "nope"), "")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestResolve_OverrideIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := resolve(path, "")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestResolve_InstallRelative(t *testing.T) {
	root := t.TempDir()
	binDir := filepath.Join(root, "bin")
	tplDir := filepath.Join(root, "template-mushin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	require.NoError(t, os.MkdirAll(tplDir, 0o755))
	exe := filepath.Join(binDir, "create-mushin")
	require.NoError(t, os.WriteFile(exe, nil, 0o755))

	src, err := resolve("", exe)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(tplDir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(src.Origin)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolve_SiblingOfBinary(t *testing.T) {
	root := t.TempDir()
	tplDir := filepath.Join(root, "template-mushin")
	require.NoError(t, os.MkdirAll(tplDir, 0o755))
	exe := filepath.Join(root, "create-mushin")
	require.NoError(t, os.WriteFile(exe, nil, 0o755))

	src, err := resolve("", exe)
	require.NoError(t, err)
	assert.NotEqual(t, OriginEmbedded, src.Origin)
}

func TestResolve_FallsBackToEmbedded(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "bin", "create-mushin")

	src, err := resolve("", exe)
	require.NoError(t, err)
	assert.Equal(t, OriginEmbedded, src.Origin)

	files, err := NewDeployer(src.FS).ListTemplates()
	require.NoError(t, err)
	assert.Contains(t, files, "package.json")
	assert.Contains(t, files, ".gitignore")
}

func TestEmbeddedTemplates_PackageJSON(t *testing.T) {
	fsys, err := EmbeddedTemplates()
	require.NoError(t, err)

	data, err := fs.ReadFile(fsys, "package.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"start"`)
}
