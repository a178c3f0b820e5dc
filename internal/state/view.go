package state

import (
	"github.com/five82/prais/internal/catalog"
	"github.com/five82/prais/internal/filter"
	"github.com/five82/prais/internal/sorting"
)

// DisplayRow is a row ready to render. Article and Name carry the search
// highlight; hidden rows get a single plain segment.
type DisplayRow struct {
	Row       catalog.Row
	Visible   bool
	Article   []filter.Segment
	Name      []filter.Segment
	PriceText string
}

// View is the full table in display order with a visibility flag per row.
type View struct {
	Rows     []DisplayRow
	Visible  int
	Total    int
	Criteria filter.Criteria
	Sort     sorting.State
}

// VisibleRows returns the rows that pass the current criteria, in display
// order.
func (v View) VisibleRows() []DisplayRow {
	out := make([]DisplayRow, 0, v.Visible)
	for _, r := range v.Rows {
		if r.Visible {
			out = append(out, r)
		}
	}
	return out
}

// IndexOf returns the position of the row with id among the visible rows, or
// -1 when it is hidden or unknown.
func (v View) IndexOf(id int) int {
	i := 0
	for _, r := range v.Rows {
		if !r.Visible {
			continue
		}
		if r.Row.ID == id {
			return i
		}
		i++
	}
	return -1
}
