package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mushin-app/create-mushin/internal/defs"
	"github.com/mushin-app/create-mushin/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   defs.ToolName,
	Short: "Create a new Mushin project",
	Long: `create-mushin asks for a project name, copies the Mushin template into
a new folder of that name and offers to install dependencies and start the
application.

The template is read from the template-mushin directory installed next to
the binary, or from the copy built into it. Prompts fall back to config
answers and defaults when stdin is not a terminal.`,
	Args:          cobra.NoArgs,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCreate,
}

// Execute runs the root command and reports any error on stderr.
// Interrupts cancel the running workflow.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps the result of Execute to a process exit status.
// A declined overwrite is not an error, so it exits 0 like a success.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s %s\n", defs.ToolName, version.GetFullVersion()))

	f := rootCmd.Flags()
	f.String("config", "", "Config file (default: <user config dir>/create-mushin/config.yaml)")
	f.String("template", "", "Template directory (default: next to the binary, then built in)")
	f.Bool("non-interactive", false, "Answer prompts from config answers and defaults")
	f.Bool("verbose", false, "Write diagnostic logs to stderr")
	f.Bool("no-color", false, "Disable colored output")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
