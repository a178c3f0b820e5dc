package cli

import (
	"github.com/spf13/cobra"

	"github.com/five82/prais/internal/app"
)

// NewTagsCommand creates the tags command.
func NewTagsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "tags [catalog]",
		Short:         "List the categories and materials in a catalog",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Tags(cmd.Context(), rootOpts.appOptions(args), rootOpts.format, cmd.OutOrStdout())
		},
	}
}
