package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/prais/internal/catalog"
)

func furniture() []catalog.Row {
	return catalog.NewStore([]catalog.Row{
		{Article: "A1", Name: "Стол", Category: "furniture", Material: "wood", Price: 1500},
		{Article: "B2", Name: "Стул", Category: "furniture", Material: "metal", Price: 800},
		{Article: "K.5", Name: "Кронштейн 5.5", Category: "fasteners", Material: "metal", Price: 120},
		{Article: "L7", Name: "Лампа настольная", Category: "light", Price: 2300},
		{Article: "Z9", Name: "Заглушка"},
	}).Rows()
}

func articles(rows []catalog.Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Article)
	}
	return out
}

func TestVisibleRows(t *testing.T) {
	rows := furniture()

	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"no criteria", Criteria{}, []string{"A1", "B2", "K.5", "L7", "Z9"}},
		{"material", Criteria{Material: "metal"}, []string{"B2", "K.5"}},
		{"category", Criteria{Category: "furniture"}, []string{"A1", "B2"}},
		{"category and material", Criteria{Category: "furniture", Material: "metal"}, []string{"B2"}},
		{"lowercase article", Criteria{Search: "a1"}, []string{"A1"}},
		{"name is case-insensitive", Criteria{Search: "СТУЛ"}, []string{"B2"}},
		{"substring of name", Criteria{Search: "ст"}, []string{"A1", "B2", "L7"}},
		{"dot is literal", Criteria{Search: "."}, []string{"K.5"}},
		{"star is literal", Criteria{Search: "*"}, []string{}},
		{"search and tag", Criteria{Search: "ст", Category: "light"}, []string{"L7"}},
		{"category is case-sensitive", Criteria{Category: "Furniture"}, []string{}},
		{"term is not trimmed", Criteria{Search: " a1"}, []string{}},
		{"unknown material", Criteria{Material: "glass"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, articles(VisibleRows(rows, tt.c)))
		})
	}
}

func TestVisibleRows_SubsetAndIdempotent(t *testing.T) {
	rows := furniture()
	all := make(map[int]catalog.Row, len(rows))
	for _, r := range rows {
		all[r.ID] = r
	}

	for _, c := range []Criteria{{}, {Search: "с"}, {Material: "metal"}, {Search: "zz"}, {Category: "light", Search: "лам"}} {
		first := VisibleRows(rows, c)
		for _, r := range first {
			orig, ok := all[r.ID]
			require.True(t, ok)
			assert.Equal(t, orig, r)
		}
		assert.Equal(t, first, VisibleRows(rows, c), "criteria %+v", c)
	}
}

func TestMatchesAgreesWithVisibleRows(t *testing.T) {
	rows := furniture()
	c := Criteria{Search: "с", Material: "metal"}

	visible := VisibleRows(rows, c)
	var matched []catalog.Row
	for _, r := range rows {
		if Matches(r, c) {
			matched = append(matched, r)
		}
	}
	assert.Equal(t, visible, matched)
}

func TestMatches_EmptyTagsOnRow(t *testing.T) {
	row := catalog.Row{Article: "Z9", Name: "Заглушка"}

	assert.True(t, Matches(row, Criteria{}))
	assert.False(t, Matches(row, Criteria{Category: "furniture"}))
	assert.False(t, Matches(row, Criteria{Material: "wood"}))
}

func TestCriteriaIsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.False(t, Criteria{Search: " "}.IsZero())
	assert.False(t, Criteria{Material: "wood"}.IsZero())
}
