package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/prais/internal/filter"
	"github.com/five82/prais/internal/sorting"
	"github.com/five82/prais/internal/state"
)

type field int

const (
	fieldArticle field = iota
	fieldName
	fieldCategory
	fieldMaterial
	fieldPrice
)

type column struct {
	field field
	title string
	width int
	sort  sorting.Column // ColumnNone for unsortable columns
	right bool
}

// columns lays out the table for an inner width. Narrow terminals drop the
// category and material columns.
func (m Model) columns(inner int) []column {
	cols := []column{
		{field: fieldArticle, title: "Article", width: articleColumnWidth, sort: sorting.ColumnArticle},
		{field: fieldName, title: "Name", sort: sorting.ColumnName},
	}
	if m.width >= LayoutCompactWidth {
		cols = append(cols,
			column{field: fieldCategory, title: "Category", width: categoryColumnWidth},
			column{field: fieldMaterial, title: "Material", width: materialColumnWidth},
		)
	}
	cols = append(cols, column{field: fieldPrice, title: "Price", width: m.priceWidth(), sort: sorting.ColumnPrice, right: true})

	fixed := columnGap * (len(cols) - 1)
	for _, c := range cols {
		fixed += c.width
	}
	cols[1].width = max(inner-fixed, minNameColumnWidth)
	return cols
}

// priceWidth fits the widest formatted price in the catalog, hidden rows
// included, so the column does not jump as filters change.
func (m Model) priceWidth() int {
	width := priceColumnWidth
	for _, r := range m.view.Rows {
		width = max(width, lipgloss.Width(r.PriceText))
	}
	return width
}

// renderTable renders the price table in a titled box filling the screen
// below the header and command bar.
func (m Model) renderTable() string {
	height := m.height - chromeLines
	inner := m.width - 4 // borders and one cell of padding each side
	title := fmt.Sprintf("Price list (%d/%d)", m.view.Visible, m.view.Total)

	var content string
	switch {
	case m.view.Total == 0:
		content = m.renderEmpty("Catalog is empty", inner, height-boxBorderLines)
	case len(m.rows) == 0:
		content = m.renderEmpty("No rows match the current filters", inner, height-boxBorderLines)
	default:
		cols := m.columns(inner)
		lines := []string{m.renderColumnHeader(cols, inner)}
		end := min(m.offset+m.bodyHeight(), len(m.rows))
		for i := m.offset; i < end; i++ {
			lines = append(lines, m.renderRow(m.rows[i], cols, inner, i == m.selected))
		}
		content = strings.Join(lines, "\n")
	}

	return m.renderTitledBox(title, content, m.width, height, !m.searching)
}

func (m Model) renderEmpty(msg string, width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	return lipgloss.Place(max(width+2, 0), max(height, 1), lipgloss.Center, lipgloss.Center,
		styles.MutedText.Render(msg),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.SurfaceAlt)))
}

// renderColumnHeader renders column titles with ▲/▼ on the sorted column.
func (m Model) renderColumnHeader(cols []column, inner int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	cells := make([]string, 0, len(cols))
	for _, c := range cols {
		label := c.title
		style := styles.ColumnHeader
		if ind := m.view.Sort.Indicator(c.sort); ind != "" {
			label += " " + ind
			style = style.Foreground(lipgloss.Color(m.theme.Warning))
		}
		label = truncate(label, c.width)
		if c.right {
			label = padLeft(label, c.width)
		} else {
			label = padRight(label, c.width)
		}
		cells = append(cells, bg.Render(label, style))
	}
	return bg.FillLine(bg.Space()+strings.Join(cells, bg.Spaces(columnGap)), inner+2)
}

// renderRow renders one visible row. Search matches keep the match style on
// the selected row too.
func (m Model) renderRow(r state.DisplayRow, cols []column, inner int, selected bool) string {
	styles := m.theme.Styles()
	bgColor := m.theme.SurfaceAlt
	text := styles.Text
	muted := styles.MutedText
	if selected {
		bgColor = m.theme.SelectionBg
		text = styles.Selected
		muted = styles.Selected
	}
	bg := NewBgStyle(bgColor)

	cells := make([]string, 0, len(cols))
	for _, c := range cols {
		switch c.field {
		case fieldArticle:
			cells = append(cells, renderSegments(r.Article, c.width, text, styles.Match, bg))
		case fieldName:
			cells = append(cells, renderSegments(r.Name, c.width, text, styles.Match, bg))
		case fieldCategory:
			cells = append(cells, bg.Render(padRight(truncate(r.Row.Category, c.width), c.width), muted))
		case fieldMaterial:
			cells = append(cells, bg.Render(padRight(truncate(r.Row.Material, c.width), c.width), muted))
		case fieldPrice:
			cells = append(cells, bg.Render(padLeft(truncate(r.PriceText, c.width), c.width), text))
		}
	}
	return bg.FillLine(bg.Space()+strings.Join(cells, bg.Spaces(columnGap)), inner+2)
}

// renderSegments draws highlighted text clipped and padded to width cells.
func renderSegments(segs []filter.Segment, width int, base, match lipgloss.Style, bg BgStyle) string {
	var b strings.Builder
	used := 0
	for _, s := range clipSegments(segs, width) {
		used += lipgloss.Width(s.Text)
		if s.Match {
			b.WriteString(match.Render(s.Text))
		} else {
			b.WriteString(bg.Render(s.Text, base))
		}
	}
	b.WriteString(bg.Spaces(width - used))
	return b.String()
}

// clipSegments cuts segments to width cells, ending in an ellipsis when
// anything was dropped.
func clipSegments(segs []filter.Segment, width int) []filter.Segment {
	if width <= 0 {
		return nil
	}
	if lipgloss.Width(filter.Plain(segs)) <= width {
		return segs
	}

	budget := width - 1
	out := make([]filter.Segment, 0, len(segs)+1)
	for _, s := range segs {
		if budget <= 0 {
			break
		}
		if w := lipgloss.Width(s.Text); w <= budget {
			out = append(out, s)
			budget -= w
			continue
		}
		runes := []rune(s.Text)
		n := 0
		for n < len(runes) && lipgloss.Width(string(runes[:n+1])) <= budget {
			n++
		}
		if n > 0 {
			out = append(out, filter.Segment{Text: string(runes[:n]), Match: s.Match})
		}
		break
	}
	return append(out, filter.Segment{Text: "…"})
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor := m.theme.Border
	if focused {
		borderColor = m.theme.BorderFocus
	}
	bg := NewBgStyle(m.theme.SurfaceAlt)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	top := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottom := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-boxBorderLines, 0)
	lines := make([]string, 0, boxHeight+2)
	lines = append(lines, top)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines, bg.Render("│", borderStyle)+bg.FillLine(line, innerWidth)+bg.Render("│", borderStyle))
	}
	lines = append(lines, bottom)
	return strings.Join(lines, "\n")
}
