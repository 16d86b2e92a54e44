package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mushin-app/create-mushin/internal/config"
	"github.com/mushin-app/create-mushin/internal/core/project"
)

// runCreate runs the project creation workflow.
func runCreate(cmd *cobra.Command, _ []string) error {
	flags := Flags{
		ConfigPath:     getStringFlag(cmd, "config"),
		TemplateDir:    getStringFlag(cmd, "template"),
		NonInteractive: getBoolFlag(cmd, "non-interactive"),
		Verbose:        getBoolFlag(cmd, "verbose"),
		NoColor:        getBoolFlag(cmd, "no-color"),
	}
	out := cmd.OutOrStdout()

	d, err := InitDependencies(flags, out, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	initializer := project.NewInitializer(d.Prompt, d.Runner,
		project.WithProgress(d.Progress),
		project.WithReporter(d.Reporter),
		project.WithLogger(d.Logger),
	)

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	result, err := initializer.Init(cmd.Context(), project.InitOptions{
		WorkDir:     wd,
		DefaultName: d.Config.Project.DefaultName,
		Template:    d.Template.FS,
		Install:     d.Install,
		Start:       d.Start,
	})
	if err != nil {
		return err
	}
	d.Logger.Debug("workflow finished", "outcome", result.Outcome.String())

	if result.Outcome != project.OutcomeCreated || result.Started {
		return nil
	}

	st := newStyles(d.Theme.NoColor)
	_, _ = fmt.Fprintln(out, renderSummary(st, result))
	if steps, err := renderNextSteps(nextStepsMarkdown(result, d.Install.String(), d.Start.String()), d.Theme.NoColor); err == nil {
		_, _ = fmt.Fprint(out, steps)
	} else {
		d.Logger.Debug("render next steps", "error", err)
	}
	return nil
}

// displayTitle turns a directory name like "my-site" into "My Site".
func displayTitle(dir string) string {
	name := strings.NewReplacer("-", " ", "_", " ").Replace(filepath.Base(dir))
	return cases.Title(language.Und).String(name)
}

// renderSummary builds the rounded card shown after a project is created.
func renderSummary(st styles, result *project.InitResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", st.symSuccess(), st.primary.Render(displayTitle(result.ProjectDir)))
	fmt.Fprintf(&b, "  %s\n", st.muted.Render(result.ProjectDir))
	fmt.Fprintf(&b, "  %d files copied", len(result.Files))
	if len(result.Skipped) > 0 {
		fmt.Fprintf(&b, ", skipped %s", strings.Join(result.Skipped, ", "))
	}
	return st.card.Render(b.String())
}

// nextStepsMarkdown lists the commands left for the user to run.
func nextStepsMarkdown(result *project.InitResult, install, start string) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	fmt.Fprintf(&b, "- `cd %s`\n", result.ProjectName)
	if !result.Installed {
		fmt.Fprintf(&b, "- `%s`\n", install)
	}
	fmt.Fprintf(&b, "- `%s`\n", start)
	return b.String()
}

// renderNextSteps renders markdown for the terminal. Without color the
// plain notty style is used.
func renderNextSteps(md string, noColor bool) (string, error) {
	style := glamourstyles.AutoStyle
	if noColor {
		style = glamourstyles.NoTTYStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// userMessage returns the short message for failures the user can act on.
func userMessage(err error) string {
	switch {
	case errors.Is(err, project.ErrEmptyName):
		return "Please provide a project name."
	case errors.Is(err, project.ErrInstallFailed):
		return "Failed to install dependencies."
	case errors.Is(err, project.ErrStartFailed):
		return "Failed to start the application."
	default:
		return ""
	}
}

// printError reports err on w. Known failures get their short message
// followed by the cause; anything else is printed in full.
func printError(w io.Writer, err error) {
	st := newStyles(os.Getenv(config.EnvNoColor) != "")
	msg := userMessage(err)
	if msg == "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", st.symError(), st.errText.Render("Error: "+err.Error()))
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", st.symError(), st.errText.Render(msg))
	if !errors.Is(err, project.ErrEmptyName) {
		_, _ = fmt.Fprintf(w, "  %s\n", st.muted.Render(err.Error()))
	}
}
