package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mushin-app/create-mushin/internal/defs"
)

// maxConfigSize caps the config file read.
const maxConfigSize = 1 << 20

// Loader reads configuration from a YAML file and the environment.
type Loader struct {
	getenv func(string) string
}

// NewLoader creates a Loader that reads overrides from the process environment.
func NewLoader() *Loader {
	return &Loader{getenv: os.Getenv}
}

// newLoaderWithEnv creates a Loader with a custom environment (for testing).
func newLoaderWithEnv(env map[string]string) *Loader {
	return &Loader{getenv: func(k string) string { return env[k] }}
}

// ResolvePath picks the config file path: an explicit path wins, then
// CREATE_MUSHIN_CONFIG, then config.yaml under the user config directory.
// It returns "" when no user config directory is available.
func (l *Loader) ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := l.getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, defs.ToolName, defs.ConfigFileName)
}

// Load reads the config file at path, applies environment overrides and
// validates the result. A missing file (or an empty path) yields defaults.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		loaded, err := loadYAMLFile(path, cfg)
		if err != nil {
			return nil, err
		}
		if !loaded {
			slog.Debug("config file not found, using defaults", "path", path)
		}
	}

	l.applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables on top of file values.
func (l *Loader) applyEnv(cfg *Config) {
	if v := l.getenv(EnvTemplateDir); v != "" {
		cfg.Template.Dir = v
	}
	if v := l.getenv(EnvInstallCmd); v != "" {
		cfg.Commands.Install = v
	}
	if v := l.getenv(EnvStartCmd); v != "" {
		cfg.Commands.Start = v
	}
	// https://no-color.org: any non-empty value disables color.
	if l.getenv(EnvNoColor) != "" {
		cfg.UI.NoColor = true
	}
}

// loadYAMLFile unmarshals the file at path into target. Returns (true, nil)
// if the file was found and parsed, (false, nil) if it does not exist.
func loadYAMLFile(path string, target any) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxConfigSize {
		return false, fmt.Errorf("config file %s exceeds %d bytes: %w", path, maxConfigSize, ErrInvalidConfig)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}
	return true, nil
}
