// Package config loads prais settings from a TOML file.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. An explicitly provided path
//  2. Otherwise ~/.config/prais/config.toml
//  3. A missing file is not an error; defaults are used
//  4. Missing or blank fields keep their defaults
//
// # TOML Format
//
//	catalog = "~/shop/prices.toml"
//	log_file = "~/.local/state/prais/prais.log"
//	log_level = "info"
//	log_format = "text"
//
// All fields are optional. Paths get tilde expansion and are made absolute.
// The catalog key only supplies a default; a catalog named on the command
// line wins, and flags or PRAIS_* environment variables override the log
// settings (see internal/cli).
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files (other
// than os.ErrNotExist) and TOML syntax errors.
package config
