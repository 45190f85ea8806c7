package commands

import (
	"github.com/spf13/cobra"
	"github.com/swapnilraj/purescript-native/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [modules...]",
		Short: "Generate C++ for stale modules",
		Long: "Generate C++ for stale modules. Modules are dotted names or globs such as Data.*;\n" +
			"with no arguments every module under the source directory is considered.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			jobs, _ := cmd.Flags().GetInt("jobs")
			noBanner, _ := cmd.Flags().GetBool("no-banner")
			output, _ := cmd.Flags().GetString("output")
			quiet, _ := cmd.Flags().GetBool("quiet")
			trace, _ := cmd.Flags().GetBool("trace")

			opts := app.BuildOptions{
				LoadOptions: loadOptions(cmd),
				Force:       force,
				Jobs:        jobs,
				NoBanner:    noBanner,
				OutputDir:   output,
				Quiet:       quiet,
			}
			if trace {
				opts.Trace = cmd.ErrOrStderr()
			}

			_, err := c.app.Build(cmd.Context(), args, opts)
			return err
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild every selected module regardless of freshness")
	cmd.Flags().IntP("jobs", "j", 0, "Number of modules built at once (defaults to the configuration)")
	cmd.Flags().Bool("no-banner", false, "Omit the generated-by line from headers and implementations")
	cmd.Flags().StringP("output", "o", "", "Output directory, overriding the configuration")
	cmd.Flags().BoolP("quiet", "q", false, "Hide modules that are already up to date")
	cmd.Flags().Bool("trace", false, "Print per-module timing to stderr")
	return cmd
}
