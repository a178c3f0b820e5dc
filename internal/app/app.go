package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/five82/prais/internal/catalog"
	"github.com/five82/prais/internal/config"
	"github.com/five82/prais/internal/logging"
	"github.com/five82/prais/internal/logtail"
	"github.com/five82/prais/internal/prefs"
	"github.com/five82/prais/internal/report"
	"github.com/five82/prais/internal/sorting"
	"github.com/five82/prais/internal/state"
	"github.com/five82/prais/internal/ui"
)

// Options configure a prais run. Empty fields fall back to config.toml and
// then to built-in defaults.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/prais/prefs.toml
	CatalogPath string // overrides the catalog key from config
	LogFile     string
	LogLevel    string
	LogFormat   string
}

// ListOptions select and order the rows printed by List.
type ListOptions struct {
	Search   string
	Category string
	Material string
	Sort     string // article, name or price; empty keeps load order
	Desc     bool
	Format   report.Format
}

// runtime is what every command needs after start-up.
type runtime struct {
	cfg    config.Config
	logger *slog.Logger
	close  func()
}

// Run opens the catalog in the TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := start(opts)
	if err != nil {
		return err
	}
	defer rt.close()

	table, err := rt.openTable(ctx)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	rt.logger.Debug("prefs loaded", "theme", userPrefs.Theme)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Table:     table,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Logger:    rt.logger,
	})
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	rt.logger.Info("exited")
	return nil
}

// List prints the rows that pass lo's filters in lo's order.
func List(ctx context.Context, opts Options, lo ListOptions, w io.Writer) error {
	col := sorting.ParseColumn(lo.Sort)
	if strings.TrimSpace(lo.Sort) != "" && col == sorting.ColumnNone {
		return fmt.Errorf("invalid sort column %q: must be article, name or price", lo.Sort)
	}

	rt, err := start(opts)
	if err != nil {
		return err
	}
	defer rt.close()

	table, err := rt.openTable(ctx)
	if err != nil {
		return err
	}

	table.SetSearch(lo.Search)
	table.SetCategory(lo.Category)
	table.SetMaterial(lo.Material)
	if col != sorting.ColumnNone {
		dir := sorting.Asc
		if lo.Desc {
			dir = sorting.Desc
		}
		table.SetSort(sorting.State{Column: col, Direction: dir})
	}

	view := table.View()
	rt.logger.Debug("list", "visible", view.Visible, "total", view.Total, "sort", col.String())
	return report.Write(w, view, lo.Format)
}

// Tags prints the category and material values found in the catalog.
func Tags(ctx context.Context, opts Options, f report.Format, w io.Writer) error {
	rt, err := start(opts)
	if err != nil {
		return err
	}
	defer rt.close()

	table, err := rt.openTable(ctx)
	if err != nil {
		return err
	}
	store := table.Store()
	return report.WriteTags(w, report.Tags{
		Categories: store.Categories(),
		Materials:  store.Materials(),
	}, f)
}

// Logs prints the last n lines of the prais log at level or above. An empty
// level prints everything.
func Logs(opts Options, n int, level string, w io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	lines, err := logtail.Read(cfg.LogFile, n)
	if err != nil {
		return err
	}
	if strings.TrimSpace(level) != "" {
		lines = logtail.AtLeast(lines, logging.ParseLevel(level))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig reads config.toml and applies explicit overrides.
func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.CatalogPath != "" {
		path, err := config.ExpandPath(opts.CatalogPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("catalog path: %w", err)
		}
		cfg.Catalog = path
	}
	if opts.LogFile != "" {
		path, err := config.ExpandPath(opts.LogFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("log file path: %w", err)
		}
		cfg.LogFile = path
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.LogFormat = opts.LogFormat
	}
	return cfg, nil
}

// start loads config and installs the file logger.
func start(opts Options) (runtime, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return runtime{}, err
	}
	file, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return runtime{}, err
	}
	logger := logging.Setup(file, cfg.LogLevel, cfg.LogFormat)
	return runtime{
		cfg:    cfg,
		logger: logger,
		close:  func() { _ = file.Close() },
	}, nil
}

// openTable loads the configured catalog into a fresh table.
func (rt runtime) openTable(ctx context.Context) (*state.Table, error) {
	store, err := catalog.Load(ctx, rt.cfg.Catalog)
	if err != nil {
		rt.logger.Error("catalog load failed", "path", rt.cfg.Catalog, "error", err)
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	rt.logger.Info("catalog loaded",
		"source", store.Source(),
		"rows", store.Len(),
		"categories", len(store.Categories()),
		"materials", len(store.Materials()),
	)
	return state.NewTable(store), nil
}
