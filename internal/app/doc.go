// Package app is the composition root for prais.
//
// Every command follows the same start-up:
//
//  1. Load config.toml (internal/config) and apply command-line overrides
//  2. Open the log file and install the slog handler (internal/logging)
//  3. Load the catalog (internal/catalog) and log "catalog loaded"
//  4. Wrap it in a state.Table
//
// Run then hands the table to the Bubble Tea UI together with the saved
// theme. List and Tags apply their options to the table once and print
// through internal/report. Logs skips the catalog and reads the tail of the
// log file.
//
// The catalog is read once. Nothing polls or reloads it while the UI runs, so
// there are no background goroutines here.
package app
