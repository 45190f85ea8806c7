package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newRuntimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runtime",
		Short: "Inspect the shared runtime support files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "verify",
		Short: "Compare the runtime directory with the bundled runtime files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := c.app.VerifyRuntime(loadOptions(cmd))
			if err != nil {
				return err
			}

			stale := 0
			for _, s := range statuses {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", s.State, s.Path)
				if s.State != domain.RuntimeFileOK {
					stale++
				}
			}
			if stale > 0 {
				return zerr.With(zerr.Wrap(domain.ErrRuntimeOutOfDate, "runtime verification failed"), "files", stale)
			}
			return nil
		},
	})
	return cmd
}
