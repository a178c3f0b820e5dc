// Package sorting orders catalog rows by a single column.
//
// Text columns use Russian collation rather than code point order, prices
// compare as integers, and every sort is stable so equal keys keep the order
// they arrived in. Sorting never filters: the full row set is reordered so the
// order stays right when filters are cleared later.
package sorting

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/prais/internal/catalog"
)

// Column identifies a sortable column.
type Column int

const (
	ColumnNone Column = iota
	ColumnArticle
	ColumnName
	ColumnPrice
)

// ParseColumn maps a column key to a Column. Unknown keys yield ColumnNone.
func ParseColumn(key string) Column {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "article":
		return ColumnArticle
	case "name":
		return ColumnName
	case "price":
		return ColumnPrice
	default:
		return ColumnNone
	}
}

// String returns the column key.
func (c Column) String() string {
	switch c {
	case ColumnArticle:
		return "article"
	case ColumnName:
		return "name"
	case ColumnPrice:
		return "price"
	default:
		return "none"
	}
}

// Direction is the sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// State is the current sort selection. The zero value means unsorted.
type State struct {
	Column    Column
	Direction Direction
}

// Toggle applies a column selection: picking the active column flips its
// direction, picking any other column makes it active in ascending order.
func (s State) Toggle(col Column) State {
	if s.Column == col {
		if s.Direction == Asc {
			return State{Column: col, Direction: Desc}
		}
		return State{Column: col, Direction: Asc}
	}
	return State{Column: col, Direction: Asc}
}

// Active reports whether col is the column currently marked as sorted.
func (s State) Active(col Column) bool {
	return col != ColumnNone && s.Column == col
}

// Indicator returns the marker shown next to col's header: ▲ or ▼ for the
// active column and nothing for the others.
func (s State) Indicator(col Column) string {
	if !s.Active(col) {
		return ""
	}
	if s.Direction == Desc {
		return "▼"
	}
	return "▲"
}

// Sorter orders rows. It holds a collator and is not safe for concurrent use.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter returns a Sorter using Russian collation for text columns.
func NewSorter() *Sorter {
	return &Sorter{collator: collate.New(language.Russian)}
}

// Sorted returns a stably sorted copy of rows. rows itself is not modified.
// ColumnNone, or any column the sorter does not know, keeps the input order.
func (s *Sorter) Sorted(rows []catalog.Row, st State) []catalog.Row {
	out := slices.Clone(rows)

	var compare func(a, b catalog.Row) int
	switch st.Column {
	case ColumnArticle:
		compare = func(a, b catalog.Row) int { return s.Compare(a.Article, b.Article) }
	case ColumnName:
		compare = func(a, b catalog.Row) int { return s.Compare(a.Name, b.Name) }
	case ColumnPrice:
		compare = func(a, b catalog.Row) int { return cmp.Compare(a.Price, b.Price) }
	default:
		return out
	}

	if st.Direction == Desc {
		asc := compare
		compare = func(a, b catalog.Row) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, compare)
	return out
}

// Compare compares two strings with the sorter's collation.
func (s *Sorter) Compare(a, b string) int {
	return s.collator.CompareString(a, b)
}
