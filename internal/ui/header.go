package ui

import (
	"fmt"
	"path/filepath"

	"github.com/five82/prais/internal/sorting"
)

type headerChip struct {
	label string
	value string
}

// activeFilters lists the filters that currently narrow the table.
func (m Model) activeFilters() []headerChip {
	c := m.view.Criteria
	if c.IsZero() {
		return nil
	}
	var chips []headerChip
	if c.Search != "" {
		chips = append(chips, headerChip{"Search", fmt.Sprintf("%q", c.Search)})
	}
	if c.Category != "" {
		chips = append(chips, headerChip{"Category", c.Category})
	}
	if c.Material != "" {
		chips = append(chips, headerChip{"Material", c.Material})
	}
	return chips
}

// renderHeader renders the status line: source, row counts, filters, sort.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("prais", styles.Logo)}

	if src := m.table.Store().Source(); src != "" {
		parts = append(parts, bg.Render(truncate(filepath.Base(src), 32), styles.MutedText))
	}

	countStyle := styles.Text
	if m.view.Visible < m.view.Total {
		countStyle = styles.WarningText
	}
	parts = append(parts,
		bg.Render("Rows:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d/%d", m.view.Visible, m.view.Total), countStyle))

	for _, chip := range m.activeFilters() {
		parts = append(parts,
			bg.Render(chip.label+":", styles.MutedText)+bg.Space()+
				bg.Render(truncate(chip.value, 24), styles.AccentText))
	}

	if st := m.view.Sort; st.Column != sorting.ColumnNone {
		parts = append(parts,
			bg.Render("Sort:", styles.MutedText)+bg.Space()+
				bg.Render(st.Column.String()+" "+st.Indicator(st.Column), styles.AccentText))
	}

	if m.notice.text != "" {
		if m.notice.failed {
			parts = append(parts, bg.Render("! "+m.notice.text, styles.DangerText))
		} else {
			parts = append(parts, bg.Render(m.notice.text, styles.SuccessText))
		}
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar shows the search box while searching and key hints
// otherwise.
func (m Model) renderCommandBar() string {
	if m.searching {
		styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
		return styles.Header.Width(m.width).Render(m.search.View())
	}

	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	themeHint := bg.Render("T", styles.AccentText) + bg.Render(":", styles.FaintText) +
		bg.Render(m.theme.Name, styles.FaintText)

	return styles.Header.Width(m.width).Render(hints + bg.Spaces(2) + themeHint)
}
