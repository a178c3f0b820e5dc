// Package catalog holds the price-list rows and the loaders that read them.
//
// A Store is built once at start-up and is read-only afterwards: filtering and
// sorting work on copies returned by Store.Rows, and the presentation layer
// only reorders or hides what it was given.
//
// # Sources
//
// Load picks a decoder from the file extension:
//
//   - .toml: [[item]] tables
//   - .yaml, .yml: a top-level items list
//   - .html, .htm: the body rows of <table id="priceTable"> (or class "price-table")
//   - .db, .sqlite, .sqlite3: the items table of a SQLite database
//
// Every source reports the same five fields. Prices go through ParsePrice or an
// equivalent numeric conversion, so a missing or non-numeric price becomes 0.
package catalog
