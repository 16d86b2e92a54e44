package config

// Config is the root configuration aggregate.
type Config struct {
	Project  ProjectConfig  `yaml:"project"`
	Template TemplateConfig `yaml:"template"`
	Commands CommandsConfig `yaml:"commands"`
	UI       UIConfig       `yaml:"ui"`
	Log      LogConfig      `yaml:"log"`
}

// ProjectConfig holds project prompt settings.
type ProjectConfig struct {
	// DefaultName is suggested by the project name prompt.
	DefaultName string `yaml:"default_name"`
}

// TemplateConfig points at the template directory.
type TemplateConfig struct {
	// Dir overrides the installation-relative template directory.
	// Empty means auto-detect, then fall back to the embedded template.
	Dir string `yaml:"dir"`
}

// CommandsConfig holds the post-install commands as shell-like strings.
type CommandsConfig struct {
	Install string `yaml:"install"`
	Start   string `yaml:"start"`
}

// UIConfig controls terminal presentation.
type UIConfig struct {
	NoColor        bool `yaml:"no_color"`
	NonInteractive bool `yaml:"non_interactive"`
	// Answers feeds headless prompts, keyed by question key
	// (project_name, overwrite, install, start).
	Answers map[string]string `yaml:"answers"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level string `yaml:"level"`
}
