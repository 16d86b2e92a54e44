package config

import "github.com/mushin-app/create-mushin/internal/defs"

// Default value constants.
const (
	DefaultInstallCommand = "pnpm install"
	DefaultStartCommand   = "pnpm start"
	DefaultLogLevel       = "warn"
)

// Environment variables that override file values.
const (
	EnvConfigPath  = "CREATE_MUSHIN_CONFIG"
	EnvTemplateDir = "CREATE_MUSHIN_TEMPLATE"
	EnvInstallCmd  = "CREATE_MUSHIN_INSTALL_CMD"
	EnvStartCmd    = "CREATE_MUSHIN_START_CMD"
	EnvNoColor     = "NO_COLOR"
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			DefaultName: defs.DefaultProjectName,
		},
		Commands: CommandsConfig{
			Install: DefaultInstallCommand,
			Start:   DefaultStartCommand,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}
