package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/mushin-app/create-mushin/internal/defs"
	"github.com/mushin-app/create-mushin/internal/runner"
	"github.com/mushin-app/create-mushin/internal/template"
	"github.com/mushin-app/create-mushin/internal/ui"
)

// Question keys. They double as headless answer keys.
const (
	KeyProjectName = "project_name"
	KeyOverwrite   = "overwrite"
	KeyInstall     = "install"
	KeyStart       = "start"
)

// InitOptions configures a single run.
type InitOptions struct {
	WorkDir     string         // Directory the project folder is resolved against. Defaults to os.Getwd.
	DefaultName string         // Name suggested by the prompt.
	Template    fs.FS          // Template files; only top-level regular files are staged.
	Install     runner.Command // Dependency install command.
	Start       runner.Command // Application start command.
}

// Outcome tags how a run ended when it did not fail.
type Outcome int

const (
	// OutcomeCreated means the template was staged.
	OutcomeCreated Outcome = iota
	// OutcomeCancelled means the user declined to overwrite a non-empty directory.
	OutcomeCancelled
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// InitResult summarizes a run that returned no error.
type InitResult struct {
	Outcome     Outcome
	ProjectName string
	ProjectDir  string
	CreatedDir  bool     // The project directory did not exist and was created.
	Files       []string // Template files written.
	Skipped     []string // Template entries ignored (directories and other non-files).
	Installed   bool
	Started     bool
}

// Initializer runs the project creation workflow.
type Initializer interface {
	// Init runs the workflow. A declined overwrite is reported through
	// InitResult.Outcome, not as an error. Failures wrap ErrEmptyName,
	// ErrInstallFailed or ErrStartFailed; any other error is unexpected.
	Init(ctx context.Context, opts InitOptions) (*InitResult, error)
}

// projectInitializer is the concrete implementation of Initializer.
type projectInitializer struct {
	prompt   ui.Prompt
	runner   runner.Runner
	progress ui.Progress // optional
	reporter ProgressReporter
	logger   *slog.Logger
}

// InitializerOption configures an Initializer.
type InitializerOption func(*projectInitializer)

// WithProgress shows a progress bar while staging files.
func WithProgress(p ui.Progress) InitializerOption {
	return func(i *projectInitializer) { i.progress = p }
}

// WithReporter sets the status reporter for the post-install steps.
func WithReporter(r ProgressReporter) InitializerOption {
	return func(i *projectInitializer) { i.reporter = r }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) InitializerOption {
	return func(i *projectInitializer) { i.logger = l }
}

// NewInitializer creates an Initializer that asks questions through prompt
// and runs commands through r.
func NewInitializer(prompt ui.Prompt, r runner.Runner, opts ...InitializerOption) Initializer {
	i := &projectInitializer{prompt: prompt, runner: r}
	for _, o := range opts {
		o(i)
	}
	if i.reporter == nil {
		i.reporter = &NoOpReporter{}
	}
	if i.logger == nil {
		i.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return i
}

// Init runs the workflow: name, overwrite guard, staging, post-install.
func (i *projectInitializer) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if opts.Template == nil {
		return nil, ErrNoTemplate
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 1: project name
	name, err := i.collectName(opts.DefaultName)
	if err != nil {
		return nil, err
	}

	// Step 2: target directory
	projectDir, err := resolveProjectDir(opts.WorkDir, name)
	if err != nil {
		return nil, err
	}
	i.logger.Info("creating project", "name", name, "dir", projectDir)

	result := &InitResult{ProjectName: name, ProjectDir: projectDir}

	// Step 3: overwrite guard
	empty, exists, err := inspectTarget(projectDir)
	if err != nil {
		return nil, err
	}
	if !empty {
		overwrite, err := i.confirm("The project directory is not empty. Do you want to overwrite it?", KeyOverwrite, false)
		if err != nil {
			return nil, err
		}
		if !overwrite {
			i.logger.Info("overwrite declined", "dir", projectDir)
			result.Outcome = OutcomeCancelled
			return result, nil
		}
	}
	if !exists {
		if err := os.MkdirAll(projectDir, defs.DirPerm); err != nil {
			return nil, fmt.Errorf("create project directory: %w", err)
		}
		result.CreatedDir = true
	}

	// Step 4: stage template files
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	deployer := template.NewDeployer(opts.Template,
		template.WithProgress(i.progress),
		template.WithLogger(i.logger),
	)
	deployed, err := deployer.Deploy(ctx, projectDir)
	if err != nil {
		return nil, fmt.Errorf("stage template: %w", err)
	}
	result.Files = deployed.Files
	result.Skipped = deployed.Skipped
	result.Outcome = OutcomeCreated

	// Step 5: install, then start
	if err := i.postInstall(ctx, opts, result); err != nil {
		return nil, err
	}

	i.logger.Info("project created",
		"files", len(result.Files),
		"installed", result.Installed,
		"started", result.Started,
	)
	return result, nil
}

// collectName prompts for the project name and trims it. An aborted
// prompt counts as an empty answer.
func (i *projectInitializer) collectName(defaultName string) (string, error) {
	raw, err := i.prompt.Input("What is your project name?",
		ui.WithKey(KeyProjectName),
		ui.WithDefault(defaultName),
		ui.WithPlaceholder(defaultName),
	)
	if err != nil {
		if !errors.Is(err, ui.ErrCancelled) {
			return "", fmt.Errorf("read project name: %w", err)
		}
		raw = ""
	}

	name := trimName(raw)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// confirm asks a yes/no question. An aborted prompt counts as "no".
func (i *projectInitializer) confirm(label, key string, defaultVal bool) (bool, error) {
	ok, err := i.prompt.Confirm(label, defaultVal, ui.WithKey(key))
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			return false, nil
		}
		return false, fmt.Errorf("confirm %s: %w", key, err)
	}
	return ok, nil
}

// postInstall runs the install command and, only after it succeeds, the
// start command. Each step is confirmed separately.
func (i *projectInitializer) postInstall(ctx context.Context, opts InitOptions, result *InitResult) error {
	install, err := i.confirm(fmt.Sprintf("Do you want to run %q now?", opts.Install.String()), KeyInstall, true)
	if err != nil || !install {
		return err
	}

	i.reporter.StepStart("Install", "Installing dependencies...")
	if err := i.runner.Run(ctx, result.ProjectDir, opts.Install); err != nil {
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}
	result.Installed = true
	i.reporter.StepComplete("Dependencies installed successfully.")

	start, err := i.confirm(fmt.Sprintf("Do you want to run %q now?", opts.Start.String()), KeyStart, true)
	if err != nil || !start {
		return err
	}

	i.reporter.StepStart("Start", "Starting the application...")
	if err := i.runner.Run(ctx, result.ProjectDir, opts.Start); err != nil {
		return fmt.Errorf("%w: %w", ErrStartFailed, err)
	}
	result.Started = true
	return nil
}
