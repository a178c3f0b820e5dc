package cli

import (
	"github.com/spf13/cobra"

	"github.com/five82/prais/internal/app"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var lo app.ListOptions

	cmd := &cobra.Command{
		Use:   "list [catalog]",
		Short: "Print the filtered, sorted price list",
		Long: `Print the rows that match the given filters, one per line.

--search matches a case-insensitive substring of the article or name.
--category and --material must match the row's value exactly.
--sort orders by article, name or price; --desc reverses it. Names and
articles sort in Russian alphabetical order.`,
		Example: `  prais list prices.toml --category furniture --sort price --desc
  prais list --search стол --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lo.Format = rootOpts.format
			return app.List(cmd.Context(), rootOpts.appOptions(args), lo, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&lo.Search, "search", "s", "", "substring of article or name")
	cmd.Flags().StringVar(&lo.Category, "category", "", "exact category")
	cmd.Flags().StringVar(&lo.Material, "material", "", "exact material")
	cmd.Flags().StringVar(&lo.Sort, "sort", "", "sort column (article|name|price)")
	cmd.Flags().BoolVar(&lo.Desc, "desc", false, "sort in descending order")

	return cmd
}
