package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/prais/internal/prefs"
	"github.com/five82/prais/internal/sorting"
	"github.com/five82/prais/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Table     *state.Table
	ThemeName string
	PrefsPath string // empty uses ~/.config/prais/prefs.toml
	Logger    *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	table     *state.Table
	prefsPath string
	logger    *slog.Logger
	keys      keyMap

	// UI state
	theme    Theme
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   headerNotice // transient message shown in the header

	// Data state
	view state.View
	rows []state.DisplayRow // visible rows in display order

	// Selection follows a row ID so it survives refiltering and resorting.
	selected   int
	selectedID int
	offset     int

	// Search
	search    textinput.Model
	searching bool
}

// headerNotice is a one-line message in the header, cleared by the next key.
type headerNotice struct {
	text   string
	failed bool
}

// New creates a new Bubble Tea model over table.
func New(opts Options) Model {
	table := opts.Table
	if table == nil {
		table = state.NewTable(nil)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "article or name"
	search.CharLimit = searchMaxChars
	search.SetValue(table.Criteria().Search)

	m := Model{
		table:      table,
		prefsPath:  opts.PrefsPath,
		logger:     logger,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(themeName),
		help:       help.New(),
		search:     search,
		selectedID: -1,
	}
	m.applyThemeToWidgets()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("prais")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(msg.Width-16, 10)
		m.search.Width = max(msg.Width-6, 10)
		m.ready = true
		m.scrollToSelection()
		return m, nil
	}

	// Cursor blink and similar messages belong to the search input.
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderHeader() + "\n" + m.renderCommandBar() + "\n" + m.renderTable()
}

// handleKey processes keyboard input outside the search box.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	m.notice = headerNotice{}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.table.Criteria().Search)
		m.search.CursorEnd()
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.CancelSearch):
		if m.table.Criteria().Search != "" {
			m.setSearch("")
		}

	case key.Matches(msg, m.keys.NextCategory):
		m.logFilter("category", m.table.CycleCategory(1))
	case key.Matches(msg, m.keys.PrevCategory):
		m.logFilter("category", m.table.CycleCategory(-1))
	case key.Matches(msg, m.keys.NextMaterial):
		m.logFilter("material", m.table.CycleMaterial(1))
	case key.Matches(msg, m.keys.PrevMaterial):
		m.logFilter("material", m.table.CycleMaterial(-1))

	case key.Matches(msg, m.keys.ClearFilters):
		m.table.ClearFilters()
		m.search.SetValue("")
		m.logger.Debug("filters cleared")
		m.refresh()

	case key.Matches(msg, m.keys.SortArticle):
		m.toggleSort(sorting.ColumnArticle)
	case key.Matches(msg, m.keys.SortName):
		m.toggleSort(sorting.ColumnName)
	case key.Matches(msg, m.keys.SortPrice):
		m.toggleSort(sorting.ColumnPrice)

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Top):
		m.selectIndex(0)
	case key.Matches(msg, m.keys.Bottom):
		m.selectIndex(len(m.rows) - 1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-m.bodyHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(m.bodyHeight())
	}

	return m, nil
}

// handleSearchKey feeds the search box and refilters on every change.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.ConfirmSearch):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.CancelSearch):
		m.searching = false
		m.search.Blur()
		m.setSearch("")
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != m.table.Criteria().Search {
		m.table.SetSearch(value)
		m.refresh()
	}
	return m, cmd
}

func (m *Model) setSearch(term string) {
	m.search.SetValue(term)
	m.table.SetSearch(term)
	m.refresh()
}

func (m *Model) logFilter(field, value string) {
	m.logger.Debug("filter changed", "field", field, "value", value)
	m.refresh()
}

func (m *Model) toggleSort(col sorting.Column) {
	st := m.table.ToggleSort(col)
	m.logger.Debug("sort changed", "column", st.Column.String(), "direction", st.Direction.String())
	m.refresh()
}

// cycleTheme switches to the next theme and remembers it. A failed save is
// reported in the header and the log; the new theme stays active.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyThemeToWidgets()

	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", "theme", m.theme.Name, "error", err)
		m.notice = headerNotice{text: "theme not saved", failed: true}
		return
	}
	m.notice = headerNotice{text: "theme saved"}
	m.logger.Info("theme changed", "theme", m.theme.Name)
}

func (m *Model) applyThemeToWidgets() {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText

	focus := m.theme.Styles().WithBackground(m.theme.FocusBg)
	m.search.PromptStyle = focus.AccentText
	m.search.TextStyle = focus.Text
	m.search.PlaceholderStyle = focus.FaintText
}

// refresh recomputes the view and restores the selection by row ID.
func (m *Model) refresh() {
	m.view = m.table.View()
	m.rows = m.view.VisibleRows()
	if idx := m.view.IndexOf(m.selectedID); idx >= 0 {
		m.selected = idx
	}
	m.clampSelection()
}

func (m *Model) moveSelection(delta int) {
	m.selectIndex(m.selected + delta)
}

func (m *Model) selectIndex(idx int) {
	m.selected = idx
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if len(m.rows) == 0 {
		m.selected = 0
		m.selectedID = -1
		m.offset = 0
		return
	}
	m.selected = min(max(m.selected, 0), len(m.rows)-1)
	m.selectedID = m.rows[m.selected].Row.ID
	m.scrollToSelection()
}

// scrollToSelection keeps the selected row inside the drawn window.
func (m *Model) scrollToSelection() {
	body := m.bodyHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+body {
		m.offset = m.selected - body + 1
	}
	m.offset = min(m.offset, max(len(m.rows)-body, 0))
	m.offset = max(m.offset, 0)
}

// bodyHeight is the number of table rows that fit on screen.
func (m Model) bodyHeight() int {
	return max(m.height-chromeLines-boxBorderLines-columnHeader, 1)
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
