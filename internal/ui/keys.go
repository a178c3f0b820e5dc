package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the price table.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Filtering
	Search        key.Binding
	NextCategory  key.Binding
	PrevCategory  key.Binding
	NextMaterial  key.Binding
	PrevMaterial  key.Binding
	ClearFilters  key.Binding
	ConfirmSearch key.Binding
	CancelSearch  key.Binding

	// Sorting
	SortArticle key.Binding
	SortName    key.Binding
	SortPrice   key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("?", "Help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Previous category"),
		),
		NextMaterial: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Next material"),
		),
		PrevMaterial: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "Previous material"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Clear filters"),
		),
		ConfirmSearch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Keep search"),
		),
		CancelSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search"),
		),

		SortArticle: key.NewBinding(
			key.WithKeys("1", "a"),
			key.WithHelp("1/a", "Sort by article"),
		),
		SortName: key.NewBinding(
			key.WithKeys("2", "n"),
			key.WithHelp("2/n", "Sort by name"),
		),
		SortPrice: key.NewBinding(
			key.WithKeys("3", "p"),
			key.WithHelp("3/p", "Sort by price"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
	}
}

// ShortHelp returns key bindings for the command bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Search, k.NextCategory, k.NextMaterial, k.ClearFilters,
		k.SortArticle, k.SortName, k.SortPrice, k.Help, k.Quit,
	}
}

// FullHelp returns key bindings for the help overlay, one group per section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.ConfirmSearch, k.CancelSearch, k.NextCategory, k.PrevCategory, k.NextMaterial, k.PrevMaterial, k.ClearFilters},
		{k.SortArticle, k.SortName, k.SortPrice},
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
