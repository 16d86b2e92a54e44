// Package project implements the create-mushin workflow: collect a project
// name, guard against clobbering a non-empty directory, stage the template
// files and optionally install dependencies and start the application.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrEmptyName indicates the user supplied no project name.
	ErrEmptyName = errors.New("please provide a project name")

	// ErrInstallFailed indicates the dependency install command failed.
	ErrInstallFailed = errors.New("failed to install dependencies")

	// ErrStartFailed indicates the start command failed.
	ErrStartFailed = errors.New("failed to start the application")

	// ErrNoTemplate indicates InitOptions carried no template filesystem.
	ErrNoTemplate = errors.New("no template configured")
)
