// Package state holds the interactive table state for prais.
//
// # Overview
//
// A Table pairs the immutable catalog.Store with the two values the operator
// changes: the filter criteria and the sort selection. Every change is
// followed by View, which rebuilds the display from the full row set. Nothing
// is cached between calls, so whichever input arrived last decides what is
// shown.
//
// # Pipeline
//
//	store.Rows()          load order, never mutated
//	     ↓
//	Sorter.Sorted()       full set, stable, Russian collation
//	     ↓
//	filter.Matches()      visibility flag per row
//	     ↓
//	Highlighter           match segments for article and name (visible rows)
//	     ↓
//	format.Price()        ru-RU price text
//	     ↓
//	View{Rows, Visible, Total, Criteria, Sort}
//
// Sorting always starts from load order, so repeated header selections do not
// compound: ties fall back to the catalog's own order every time.
//
// # Core Types
//
// Table:
//   - Holds criteria and sort.State as plain values
//   - Not safe for concurrent use; the UI drives it from a single goroutine
//
// View:
//   - The whole row set in display order, hidden rows included
//   - VisibleRows and IndexOf give the subset the UI navigates
//
// # Usage Example
//
//	tbl := state.NewTable(store)
//	tbl.SetMaterial("metal")
//	tbl.ToggleSort(sorting.ColumnPrice)
//	for _, r := range tbl.View().VisibleRows() {
//		fmt.Println(r.Row.Article, r.PriceText)
//	}
package state
