// Package filter decides which catalog rows are visible for a set of criteria
// and marks where the search term occurs in their display text.
package filter

import (
	"strings"

	"github.com/five82/prais/internal/catalog"
)

// Criteria are the constraints applied to every row. Empty fields match
// anything.
type Criteria struct {
	Search   string
	Category string
	Material string
}

// IsZero reports whether no constraint is active.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Category == "" && c.Material == ""
}

// Matches reports whether row satisfies every active constraint. The search
// term is a case-insensitive literal substring of the article or the name;
// category and material must match exactly.
func Matches(row catalog.Row, c Criteria) bool {
	return matchesSearch(row, strings.ToLower(c.Search)) &&
		(c.Category == "" || c.Category == row.Category) &&
		(c.Material == "" || c.Material == row.Material)
}

// VisibleRows returns the rows that satisfy c, in input order.
func VisibleRows(rows []catalog.Row, c Criteria) []catalog.Row {
	term := strings.ToLower(c.Search)
	out := make([]catalog.Row, 0, len(rows))
	for _, r := range rows {
		if !matchesSearch(r, term) {
			continue
		}
		if c.Category != "" && c.Category != r.Category {
			continue
		}
		if c.Material != "" && c.Material != r.Material {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r catalog.Row, lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Article), lowerTerm) ||
		strings.Contains(strings.ToLower(r.Name), lowerTerm)
}
