package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedSource is returned for catalog files with an unknown extension.
	ErrUnsupportedSource = errors.New("unsupported catalog source")

	// ErrNoCatalog is returned when no catalog path was given.
	ErrNoCatalog = errors.New("no catalog configured")
)

// Kind identifies a catalog document format.
type Kind string

const (
	KindTOML   Kind = "toml"
	KindYAML   Kind = "yaml"
	KindHTML   Kind = "html"
	KindSQLite Kind = "sqlite"
)

// KindOf maps a file path to its catalog kind by extension.
func KindOf(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return KindTOML, nil
	case ".yaml", ".yml":
		return KindYAML, nil
	case ".html", ".htm":
		return KindHTML, nil
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSource, filepath.Ext(path))
	}
}

// Load reads the catalog at path into a Store.
func Load(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoCatalog
	}
	kind, err := KindOf(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []Row
	switch kind {
	case KindSQLite:
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		rows, err = readSQLite(ctx, path)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		rows, err = decode(kind, data)
	}
	if err != nil {
		return nil, err
	}
	return newStore(rows, path), nil
}

func decode(kind Kind, data []byte) ([]Row, error) {
	switch kind {
	case KindTOML:
		return decodeTOML(data)
	case KindYAML:
		return decodeYAML(data)
	case KindHTML:
		return decodeHTML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, kind)
	}
}

// documentRow is the row shape shared by the TOML and YAML sources.
type documentRow struct {
	Article  string `toml:"article" yaml:"article"`
	Name     string `toml:"name" yaml:"name"`
	Category string `toml:"category" yaml:"category"`
	Material string `toml:"material" yaml:"material"`
	Price    any    `toml:"price" yaml:"price"`
}

func (d documentRow) row() Row {
	return Row{
		Article:  d.Article,
		Name:     d.Name,
		Category: d.Category,
		Material: d.Material,
		Price:    priceValue(d.Price),
	}
}

func rowsOf(items []documentRow) []Row {
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, it.row())
	}
	return rows
}
