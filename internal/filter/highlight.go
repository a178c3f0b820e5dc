package filter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minHighlightRunes is the shortest term worth marking; a single letter would
// light up most of the table.
const minHighlightRunes = 2

// Segment is a run of display text, either plain or a search match.
type Segment struct {
	Text  string
	Match bool
}

// Highlighter marks every case-insensitive occurrence of a literal term.
type Highlighter struct {
	re *regexp.Regexp
}

// NewHighlighter prepares a highlighter for term. Surrounding whitespace is
// ignored, and terms shorter than two characters produce an inactive
// highlighter that leaves text unmarked.
func NewHighlighter(term string) Highlighter {
	term = strings.ToLower(strings.TrimSpace(term))
	if utf8.RuneCountInString(term) < minHighlightRunes {
		return Highlighter{}
	}
	return Highlighter{re: regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))}
}

// Active reports whether the highlighter marks anything.
func (h Highlighter) Active() bool {
	return h.re != nil
}

// Segments splits text into plain and matched runs. Concatenating the
// segment texts gives back text unchanged.
func (h Highlighter) Segments(text string) []Segment {
	if text == "" {
		return nil
	}
	if h.re == nil {
		return []Segment{{Text: text}}
	}

	locs := h.re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []Segment{{Text: text}}
	}

	segs := make([]Segment, 0, 2*len(locs)+1)
	pos := 0
	for _, loc := range locs {
		if loc[0] > pos {
			segs = append(segs, Segment{Text: text[pos:loc[0]]})
		}
		segs = append(segs, Segment{Text: text[loc[0]:loc[1]], Match: true})
		pos = loc[1]
	}
	if pos < len(text) {
		segs = append(segs, Segment{Text: text[pos:]})
	}
	return segs
}

// Plain joins segments back into a single string.
func Plain(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}
