// Package commands implements the CLI commands for the cssinjs style compiler.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go.trai.ch/cssinjs/internal/app"
	"go.trai.ch/cssinjs/internal/build"
)

// CLI represents the command line interface for cssinjs.
type CLI struct {
	app       Application
	configure LogConfigurer
	rootCmd   *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, w io.Writer, opts app.BuildOptions) (*app.BuildResult, error)
	Watch(ctx context.Context, opts app.WatchOptions) error
	Hydrate(ctx context.Context, in io.Reader, out io.Writer) (*app.HydrateResult, error)
	Clean(ctx context.Context) error
}

// LogConfigurer applies the --log-format flag before a command runs.
type LogConfigurer func(format string) error

// New creates a new CLI instance with the given app. A nil configure leaves logging untouched.
func New(a Application, configure LogConfigurer) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cssinjs",
		Short:         "Compile token-driven style sheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("log-format", "auto", "Log output format: auto, pretty or json")

	c := &CLI{
		app:       a,
		configure: configure,
		rootCmd:   rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if c.configure == nil {
			return nil
		}
		format, _ := cmd.Flags().GetString("log-format")
		return c.configure(format)
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newHydrateCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func stylefileArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

// SetStdin sets the input stream for the root command. Used for testing.
func (c *CLI) SetStdin(in io.Reader) {
	c.rootCmd.SetIn(in)
}
