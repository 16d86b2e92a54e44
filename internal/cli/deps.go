// Package cli provides the Cobra root command and the dependency wiring for
// create-mushin. This file defines the Dependencies struct (Composition Root)
// that wires the domain packages together.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mushin-app/create-mushin/internal/config"
	"github.com/mushin-app/create-mushin/internal/core/project"
	"github.com/mushin-app/create-mushin/internal/runner"
	"github.com/mushin-app/create-mushin/internal/template"
	"github.com/mushin-app/create-mushin/internal/ui"
)

// Flags holds the root command flags.
type Flags struct {
	ConfigPath     string
	TemplateDir    string
	NonInteractive bool
	Verbose        bool
	NoColor        bool
}

// Dependencies holds everything one run of the workflow needs. This is the
// only place where concrete types are instantiated and wired together.
type Dependencies struct {
	Config   *config.Config
	Template *template.Source
	Install  runner.Command
	Start    runner.Command
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Prompt   ui.Prompt
	Progress ui.Progress
	Runner   runner.Runner
	Reporter project.ProgressReporter
	Logger   *slog.Logger
}

// InitDependencies loads configuration and wires the workflow. User-facing
// output goes to stdout, diagnostics to stderr.
func InitDependencies(flags Flags, stdout, stderr io.Writer) (*Dependencies, error) {
	loader := config.NewLoader()
	cfg, err := loader.Load(loader.ResolvePath(flags.ConfigPath))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.Log.Level, flags.Verbose, stderr)

	templateDir := flags.TemplateDir
	if templateDir == "" {
		templateDir = cfg.Template.Dir
	}
	src, err := template.Resolve(templateDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("template resolved", "origin", src.Origin)

	install, err := runner.Parse(cfg.Commands.Install)
	if err != nil {
		return nil, fmt.Errorf("commands.install: %w", err)
	}
	start, err := runner.Parse(cfg.Commands.Start)
	if err != nil {
		return nil, fmt.Errorf("commands.start: %w", err)
	}

	theme := ui.NewTheme(flags.NoColor || cfg.UI.NoColor)

	hm := ui.NewHeadlessManager()
	if flags.NonInteractive || cfg.UI.NonInteractive {
		hm.ForceHeadless(true)
	}
	hm.SetAnswers(cfg.UI.Answers)

	return &Dependencies{
		Config:   cfg,
		Template: src,
		Install:  install,
		Start:    start,
		Theme:    theme,
		Headless: hm,
		Prompt:   ui.NewPrompt(theme, hm, stdout),
		Progress: ui.NewProgressTo(theme, hm, stdout),
		Runner:   runner.NewExecRunner(logger),
		Reporter: project.NewConsoleReporterTo(stdout),
		Logger:   logger,
	}, nil
}

// newLogger returns a discarding logger unless verbose output was requested
// or the configured level is debug or info.
func newLogger(level string, verbose bool, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch {
	case verbose || level == "debug":
		lvl = slog.LevelDebug
	case level == "info":
		lvl = slog.LevelInfo
	default:
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
