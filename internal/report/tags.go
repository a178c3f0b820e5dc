package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Tags holds the distinct filter values of a catalog in first-seen order.
type Tags struct {
	Categories []string `json:"categories"`
	Materials  []string `json:"materials"`
}

// WriteTags renders the values accepted by the category and material filters.
func WriteTags(w io.Writer, t Tags, f Format) error {
	switch f {
	case FormatJSON:
		out := Tags{Categories: nonNil(t.Categories), Materials: nonNil(t.Materials)}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatText, "":
		var b strings.Builder
		writeTagSection(&b, "CATEGORIES", t.Categories)
		writeTagSection(&b, "MATERIALS", t.Materials)
		_, err := io.WriteString(w, b.String())
		return err
	default:
		return fmt.Errorf("invalid format %q", f)
	}
}

func writeTagSection(b *strings.Builder, title string, values []string) {
	fmt.Fprintf(b, "%s (%d)\n", title, len(values))
	for _, v := range values {
		b.WriteString("  ")
		b.WriteString(v)
		b.WriteByte('\n')
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
