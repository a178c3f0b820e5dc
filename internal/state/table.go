package state

import (
	"github.com/five82/prais/internal/catalog"
	"github.com/five82/prais/internal/filter"
	"github.com/five82/prais/internal/format"
	"github.com/five82/prais/internal/sorting"
)

// Table owns the current criteria and sort selection for one catalog and
// turns them into display rows on demand.
type Table struct {
	store    *catalog.Store
	sorter   *sorting.Sorter
	criteria filter.Criteria
	sort     sorting.State
}

// NewTable creates a table over store with no filters and no sort.
func NewTable(store *catalog.Store) *Table {
	return &Table{store: store, sorter: sorting.NewSorter()}
}

// Store returns the underlying row store.
func (t *Table) Store() *catalog.Store { return t.store }

// Criteria returns the active filter criteria.
func (t *Table) Criteria() filter.Criteria { return t.criteria }

// Sort returns the active sort selection.
func (t *Table) Sort() sorting.State { return t.sort }

// SetSearch replaces the search term.
func (t *Table) SetSearch(term string) { t.criteria.Search = term }

// SetCategory selects a category; empty clears it.
func (t *Table) SetCategory(category string) { t.criteria.Category = category }

// SetMaterial selects a material; empty clears it.
func (t *Table) SetMaterial(material string) { t.criteria.Material = material }

// ClearFilters drops the search term and both tag filters.
func (t *Table) ClearFilters() { t.criteria = filter.Criteria{} }

// ToggleSort applies a column-header selection and returns the new state.
func (t *Table) ToggleSort(col sorting.Column) sorting.State {
	t.sort = t.sort.Toggle(col)
	return t.sort
}

// SetSort replaces the sort selection.
func (t *Table) SetSort(s sorting.State) { t.sort = s }

// CycleCategory moves the category filter step places through "any" and the
// store's categories, wrapping at both ends.
func (t *Table) CycleCategory(step int) string {
	t.criteria.Category = cycle(t.store.Categories(), t.criteria.Category, step)
	return t.criteria.Category
}

// CycleMaterial is CycleCategory for materials.
func (t *Table) CycleMaterial(step int) string {
	t.criteria.Material = cycle(t.store.Materials(), t.criteria.Material, step)
	return t.criteria.Material
}

// cycle treats options as a ring prefixed with "" (no filter).
func cycle(options []string, current string, step int) string {
	ring := append([]string{""}, options...)
	idx := 0
	for i, o := range ring {
		if o == current {
			idx = i
			break
		}
	}
	n := len(ring)
	idx = ((idx+step)%n + n) % n
	return ring[idx]
}

// View recomputes the display from scratch: sort the full row set, flag each
// row against the criteria, then mark search matches on visible rows.
func (t *Table) View() View {
	ordered := t.sorter.Sorted(t.store.Rows(), t.sort)
	hl := filter.NewHighlighter(t.criteria.Search)

	v := View{
		Rows:     make([]DisplayRow, 0, len(ordered)),
		Total:    len(ordered),
		Criteria: t.criteria,
		Sort:     t.sort,
	}
	for _, r := range ordered {
		dr := DisplayRow{
			Row:       r,
			Visible:   filter.Matches(r, t.criteria),
			PriceText: format.Price(r.Price),
		}
		if dr.Visible {
			v.Visible++
		}
		if dr.Visible && hl.Active() {
			dr.Article = hl.Segments(r.Article)
			dr.Name = hl.Segments(r.Name)
		} else {
			dr.Article = []filter.Segment{{Text: r.Article}}
			dr.Name = []filter.Segment{{Text: r.Name}}
		}
		v.Rows = append(v.Rows, dr)
	}
	return v
}
