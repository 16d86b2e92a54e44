package runner

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line    string
		want    Command
		wantErr bool
	}{
		{"pnpm install", Command{Name: "pnpm", Args: []string{"install"}}, false},
		{"pnpm", Command{Name: "pnpm", Args: []string{}}, false},
		{`npm run "dev server" --port=3000`, Command{Name: "npm", Args: []string{"run", "dev server", "--port=3000"}}, false},
		{"  yarn   start  ", Command{Name: "yarn", Args: []string{"start"}}, false},
		{"", Command{}, true},
		{"   ", Command{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, len(tt.want.Args), len(got.Args))
			for i := range tt.want.Args {
				assert.Equal(t, tt.want.Args[i], got.Args[i])
			}
		})
	}
}

func TestParse_EmptyIsErrEmptyCommand(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "pnpm install", Command{Name: "pnpm", Args: []string{"install"}}.String())
	assert.Equal(t, "pnpm", Command{Name: "pnpm"}.String())
}

func newTestRunner() (*ExecRunner, *bytes.Buffer) {
	var out bytes.Buffer
	r := NewExecRunner(nil)
	r.Stdin = strings.NewReader("")
	r.Stdout = &out
	r.Stderr = &out
	return r, &out
}

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_RunsInDir(t *testing.T) {
	skipWithoutShell(t)
	dir := t.TempDir()
	r, out := newTestRunner()

	err := r.Run(context.Background(), dir, Command{Name: "sh", Args: []string{"-c", "echo installed; echo hi > marker"}})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "marker"))
	assert.Equal(t, "installed\n", out.String())
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	skipWithoutShell(t)
	r, out := newTestRunner()

	err := r.Run(context.Background(), t.TempDir(), Command{Name: "sh", Args: []string{"-c", "echo boom >&2; exit 3"}})
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Contains(t, out.String(), "boom")
}

func TestExecRunner_MissingExecutable(t *testing.T) {
	r, _ := newTestRunner()

	err := r.Run(context.Background(), t.TempDir(), Command{Name: "create-mushin-no-such-binary"})
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestExecRunner_EmptyCommand(t *testing.T) {
	r, _ := newTestRunner()
	assert.ErrorIs(t, r.Run(context.Background(), os.TempDir(), Command{}), ErrEmptyCommand)
}
