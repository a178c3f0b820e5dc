package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlighter_MarksEveryOccurrence(t *testing.T) {
	h := NewHighlighter("ст")

	got := h.Segments("Стол-стеллаж СТ")
	assert.Equal(t, []Segment{
		{Text: "Ст", Match: true},
		{Text: "ол-"},
		{Text: "ст", Match: true},
		{Text: "еллаж "},
		{Text: "СТ", Match: true},
	}, got)
	assert.Equal(t, "Стол-стеллаж СТ", Plain(got))
}

func TestHighlighter_ShortTermsAreInactive(t *testing.T) {
	for _, term := range []string{"", " ", "а", "  б  "} {
		h := NewHighlighter(term)
		assert.False(t, h.Active(), "term %q", term)
		assert.Equal(t, []Segment{{Text: "абв"}}, h.Segments("абв"))
	}
}

func TestHighlighter_TrimsTerm(t *testing.T) {
	h := NewHighlighter("  a1 ")
	assert.True(t, h.Active())
	assert.Equal(t, []Segment{{Text: "A1", Match: true}, {Text: "-x"}}, h.Segments("A1-x"))
}

func TestHighlighter_MetacharactersAreLiteral(t *testing.T) {
	h := NewHighlighter("5.")
	assert.Equal(t, []Segment{{Text: "55"}}, h.Segments("55"))
	assert.Equal(t, []Segment{{Text: "Кронштейн "}, {Text: "5.", Match: true}, {Text: "5"}}, h.Segments("Кронштейн 5.5"))

	h = NewHighlighter("(a|b)*")
	assert.Equal(t, []Segment{{Text: "ab"}}, h.Segments("ab"))
	assert.Equal(t, []Segment{{Text: "x"}, {Text: "(A|B)*", Match: true}}, h.Segments("x(A|B)*"))
}

func TestHighlighter_NoMatchAndEmptyText(t *testing.T) {
	h := NewHighlighter("zz")
	assert.Equal(t, []Segment{{Text: "Стол"}}, h.Segments("Стол"))
	assert.Nil(t, h.Segments(""))
}
