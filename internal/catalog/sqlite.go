package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const selectItems = `SELECT article, name, category, material, CAST(price AS TEXT) FROM items ORDER BY rowid`

// readSQLite reads the items table of a read-only SQLite database.
func readSQLite(ctx context.Context, path string) ([]Row, error) {
	dsn, err := sqliteDSN(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite catalog: %w", err)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite catalog: %w", err)
	}
	defer func() { _ = db.Close() }()

	rs, err := db.QueryContext(ctx, selectItems)
	if err != nil {
		return nil, fmt.Errorf("query sqlite catalog: %w", err)
	}
	defer func() { _ = rs.Close() }()

	var rows []Row
	for rs.Next() {
		var article, name, category, material, price sql.NullString
		if err := rs.Scan(&article, &name, &category, &material, &price); err != nil {
			return nil, fmt.Errorf("scan sqlite catalog: %w", err)
		}
		rows = append(rows, Row{
			Article:  article.String,
			Name:     name.String,
			Category: category.String,
			Material: material.String,
			Price:    ParsePrice(price.String),
		})
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("read sqlite catalog: %w", err)
	}
	return rows, nil
}

// sqliteDSN builds a read-only file: URI for path. The path is percent-encoded
// so '#', '?' and '%' in file names reach SQLite intact.
func sqliteDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	abs = filepath.ToSlash(abs)
	if !strings.HasPrefix(abs, "/") {
		abs = "/" + abs // C:/x becomes /C:/x
	}
	u := url.URL{Scheme: "file", Path: abs, RawQuery: "mode=ro"}
	return u.String(), nil
}
