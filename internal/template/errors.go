// Package template locates the starter template shipped with create-mushin
// and deploys its top-level files into a project directory.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates a template directory does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrPathTraversal indicates a template entry would escape the project root.
	ErrPathTraversal = errors.New("template path escapes project root")

	// ErrTargetMissing indicates the project directory does not exist.
	ErrTargetMissing = errors.New("project directory does not exist")
)
