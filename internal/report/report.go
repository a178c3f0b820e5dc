// Package report prints a table view for non-interactive use.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/five82/prais/internal/sorting"
	"github.com/five82/prais/internal/state"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = []Format{FormatText, FormatJSON}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of %v", s, ValidFormats)
	}
}

type header struct {
	title  string
	column sorting.Column
}

var headers = []header{
	{"ARTICLE", sorting.ColumnArticle},
	{"NAME", sorting.ColumnName},
	{"CATEGORY", sorting.ColumnNone},
	{"MATERIAL", sorting.ColumnNone},
	{"PRICE", sorting.ColumnPrice},
}

// Write renders the visible rows of v to w.
func Write(w io.Writer, v state.View, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, v)
	case FormatText, "":
		return writeText(w, v)
	default:
		return fmt.Errorf("invalid format %q", f)
	}
}

// writeText prints one tab-separated line per visible row between a header
// and a "visible/total rows" footer.
func writeText(w io.Writer, v state.View) error {
	titles := make([]string, 0, len(headers))
	for _, h := range headers {
		title := h.title
		if ind := v.Sort.Indicator(h.column); ind != "" {
			title += " " + ind
		}
		titles = append(titles, title)
	}

	var b strings.Builder
	b.WriteString(strings.Join(titles, "\t"))
	b.WriteByte('\n')
	for _, r := range v.VisibleRows() {
		b.WriteString(strings.Join([]string{
			r.Row.Article,
			r.Row.Name,
			r.Row.Category,
			r.Row.Material,
			r.PriceText,
		}, "\t"))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%d/%d rows\n", v.Visible, v.Total)

	_, err := io.WriteString(w, b.String())
	return err
}

type jsonRow struct {
	ID        int    `json:"id"`
	Article   string `json:"article"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Material  string `json:"material"`
	Price     int    `json:"price"`
	PriceText string `json:"price_text"`
}

func writeJSON(w io.Writer, v state.View) error {
	rows := make([]jsonRow, 0, v.Visible)
	for _, r := range v.VisibleRows() {
		rows = append(rows, jsonRow{
			ID:        r.Row.ID,
			Article:   r.Row.Article,
			Name:      r.Row.Name,
			Category:  r.Row.Category,
			Material:  r.Row.Material,
			Price:     r.Row.Price,
			PriceText: r.PriceText,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
