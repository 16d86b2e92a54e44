package template

import (
	"embed"
	"io/fs"
)

// The all: prefix keeps dotfiles such as .gitignore.
//
//go:embed all:templates/mushin
var embeddedFS embed.FS

// embeddedRoot is the template root inside embeddedFS.
const embeddedRoot = "templates/mushin"

// EmbeddedTemplates returns the template compiled into the binary.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embeddedFS, embeddedRoot)
}
