// Package commands implements the CLI commands for pscpp.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/swapnilraj/purescript-native/internal/app"
	"github.com/swapnilraj/purescript-native/internal/build"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
)

// jsonLogger is implemented by loggers that can switch to JSON records.
type jsonLogger interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for pscpp.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app and logger.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           build.Name,
		Short:         "Incremental C++ code generation for PureScript modules",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the project configuration file")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit log records as JSON")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if enable, _ := cmd.Flags().GetBool("log-json"); enable {
			if l, ok := c.logger.(jsonLogger); ok {
				l.SetJSON(true)
			}
		}
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newRuntimeCmd())
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

func loadOptions(cmd *cobra.Command) app.LoadOptions {
	path, _ := cmd.Flags().GetString("config")
	return app.LoadOptions{ConfigPath: path}
}
