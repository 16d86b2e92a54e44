package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	l := newLoaderWithEnv(nil)
	cfg, err := l.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Commands.Install != DefaultInstallCommand {
		t.Errorf("Commands.Install = %q, want default", cfg.Commands.Install)
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := newLoaderWithEnv(nil).Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Project.DefaultName != "mushin-app" {
		t.Errorf("Project.DefaultName = %q", cfg.Project.DefaultName)
	}
}

func TestLoad_FileValues(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
project:
  default_name: my-site
template:
  dir: /opt/templates/mushin
commands:
  install: npm ci
ui:
  non_interactive: true
log:
  level: debug
`)

	cfg, err := newLoaderWithEnv(nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Project.DefaultName != "my-site" {
		t.Errorf("Project.DefaultName = %q, want %q", cfg.Project.DefaultName, "my-site")
	}
	if cfg.Template.Dir != "/opt/templates/mushin" {
		t.Errorf("Template.Dir = %q", cfg.Template.Dir)
	}
	if cfg.Commands.Install != "npm ci" {
		t.Errorf("Commands.Install = %q, want %q", cfg.Commands.Install, "npm ci")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Commands.Start != DefaultStartCommand {
		t.Errorf("Commands.Start = %q, want default", cfg.Commands.Start)
	}
	if !cfg.UI.NonInteractive {
		t.Error("UI.NonInteractive should be true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "commands: [unclosed\n")

	_, err := newLoaderWithEnv(nil).Load(path)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Fatalf("Load() error = %v, want ErrInvalidYAML", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "commands:\n  start: \"\"\n")

	_, err := newLoaderWithEnv(nil).Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "commands:\n  install: npm install\n  start: npm start\n")
	env := map[string]string{
		EnvTemplateDir: "/srv/tpl",
		EnvInstallCmd:  "yarn",
		EnvStartCmd:    "yarn dev",
		EnvNoColor:     "1",
	}

	cfg, err := newLoaderWithEnv(env).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Template.Dir != "/srv/tpl" {
		t.Errorf("Template.Dir = %q", cfg.Template.Dir)
	}
	if cfg.Commands.Install != "yarn" || cfg.Commands.Start != "yarn dev" {
		t.Errorf("Commands = %+v", cfg.Commands)
	}
	if !cfg.UI.NoColor {
		t.Error("UI.NoColor should be set by NO_COLOR")
	}
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	l := newLoaderWithEnv(map[string]string{EnvConfigPath: "/env/config.yaml"})
	if got := l.ResolvePath("/flag/config.yaml"); got != "/flag/config.yaml" {
		t.Errorf("ResolvePath(explicit) = %q", got)
	}
	if got := l.ResolvePath(""); got != "/env/config.yaml" {
		t.Errorf("ResolvePath(env) = %q", got)
	}

	got := newLoaderWithEnv(nil).ResolvePath("")
	if got != "" && !strings.HasSuffix(got, filepath.Join("create-mushin", "config.yaml")) {
		t.Errorf("ResolvePath(default) = %q", got)
	}
}

func TestLoad_HeadlessAnswers(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
ui:
  non_interactive: true
  answers:
    project_name: ci-site
    install: "no"
`)

	cfg, err := newLoaderWithEnv(nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.UI.Answers["project_name"]; got != "ci-site" {
		t.Errorf("Answers[project_name] = %q, want %q", got, "ci-site")
	}
	if got := cfg.UI.Answers["install"]; got != "no" {
		t.Errorf("Answers[install] = %q, want %q", got, "no")
	}
	if _, ok := cfg.UI.Answers["start"]; ok {
		t.Error("Answers[start] should be unset")
	}
}
