package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/prais/internal/app"
)

const defaultLogLines = 200

// NewLogsCommand creates the logs command.
func NewLogsCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		lines int
		level string
	)

	cmd := &cobra.Command{
		Use:           "logs",
		Short:         "Show the end of the prais log",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lines < 0 {
				return fmt.Errorf("invalid --lines %d: must be zero (all) or positive", lines)
			}
			return app.Logs(rootOpts.appOptions(nil), lines, level, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", defaultLogLines, "number of lines to show (0 for all)")
	cmd.Flags().StringVar(&level, "level", "", "only show records at this level or above")

	return cmd
}
