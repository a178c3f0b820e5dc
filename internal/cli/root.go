// Package cli defines the prais command tree.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/prais/internal/app"
	"github.com/five82/prais/internal/report"
)

// EnvPrefix is the prefix for environment overrides, e.g. PRAIS_LOG_LEVEL.
const EnvPrefix = "PRAIS"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	PrefsPath  string
	Format     string // "text" | "json"

	format report.Format // Format after validation

	// Catalog and log settings go through viper so PRAIS_* variables can
	// supply them when the flag is not set.
	v *viper.Viper
}

// NewRootCommand creates the root command. Without a subcommand it opens the
// catalog in the interactive table.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "prais [catalog]",
		Short: "Browse a price list in the terminal",
		Long: `prais loads a price list (TOML, YAML, HTML table or SQLite) and shows it
as a table you can search, filter by category and material, and sort by
article, name or price.

The catalog comes from the argument, --catalog, PRAIS_CATALOG or the
catalog key in ~/.config/prais/config.toml, in that order.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(opts.Format)
			if err != nil {
				return err
			}
			opts.format = f
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts.appOptions(args))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default: ~/.config/prais/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default: ~/.config/prais/prefs.toml)")
	flags.StringVar(&opts.Format, "format", string(report.FormatText), "output format for list and tags (text|json)")
	flags.String("catalog", "", "catalog file (.toml, .yaml, .html, .db)")
	flags.String("log-file", "", "log file (default: ~/.local/state/prais/prais.log)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json)")

	for _, name := range []string{"catalog", "log-file", "log-level", "log-format"} {
		_ = opts.v.BindPFlag(name, flags.Lookup(name))
	}
	opts.v.SetEnvPrefix(EnvPrefix)
	opts.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	opts.v.AutomaticEnv()

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewTagsCommand(opts))
	cmd.AddCommand(NewLogsCommand(opts))

	return cmd
}

// appOptions resolves the global settings. A positional catalog argument
// wins over --catalog and the environment.
func (o *RootOptions) appOptions(args []string) app.Options {
	catalog := o.v.GetString("catalog")
	if len(args) > 0 {
		catalog = args[0]
	}
	return app.Options{
		ConfigPath:  o.ConfigPath,
		PrefsPath:   o.PrefsPath,
		CatalogPath: catalog,
		LogFile:     o.v.GetString("log-file"),
		LogLevel:    o.v.GetString("log-level"),
		LogFormat:   o.v.GetString("log-format"),
	}
}
