// Package ui renders the price table as a Bubble Tea program.
//
// # Layout
//
//	prais  prices.toml  Rows: 2/5  Category: furniture  Sort: price ▼
//	/ Search  c Next category  m Next material  ...           T:Nightfox
//	┌──────────────── Price list (2/5) ────────────────┐
//	│ Article  Name        Category   Material   Price ▼│
//	│ A1       Стол        furniture  wood        1 500 │
//	│ B2       Стул        furniture  metal         800 │
//	└───────────────────────────────────────────────────┘
//
// The header and command bar use the theme's Surface color. The table sits in
// a titled box drawn by hand so the title can live in the top border.
// Terminals narrower than LayoutCompactWidth drop the category and material
// columns.
//
// # Data Flow
//
// Every key that changes a filter or the sort calls into state.Table and then
// refresh, which takes a fresh state.View. Nothing is cached between events,
// so the screen always shows the result of the full pipeline over the current
// criteria. The selected row is tracked by ID and restored after each refresh
// when it is still visible; otherwise the selection index is clamped.
//
// # Search
//
// "/" focuses a bubbles textinput. Each keystroke updates the search term and
// refilters immediately. enter leaves the box and keeps the term; esc clears
// it. Matches in the article and name cells are drawn with Styles.Match,
// including on the selected row.
//
// # Themes
//
// Three palettes ship (Nightfox, Kanagawa, Slate). "T" cycles them and saves
// the choice through the prefs package. A failed save is logged and shown in
// the header; the UI keeps running.
//
// # BgStyle
//
// lipgloss resets the background after each styled segment, which leaves
// holes when segments are concatenated. BgStyle renders word by word with
// styled spaces so rows and bars keep a solid background.
package ui
