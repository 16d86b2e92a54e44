// Package defs holds names and permissions shared across packages.
package defs

// Tool and template names.
const (
	// ToolName is the executable name, also used for the config directory.
	ToolName = "create-mushin"

	// TemplateDirName is the template directory shipped next to the binary.
	TemplateDirName = "template-mushin"

	// ConfigFileName is the configuration file under the user config directory.
	ConfigFileName = "config.yaml"

	// DefaultProjectName is suggested when prompting for a project name.
	DefaultProjectName = "mushin-app"
)

// Permissions used when creating the project.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
