package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTags_Text(t *testing.T) {
	tags := Tags{
		Categories: []string{"furniture", "light"},
		Materials:  []string{"wood", "metal"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTags(&buf, tags, FormatText))

	newGoldie(t).Assert(t, "tags", buf.Bytes())
}

func TestWriteTags_JSONEmptyListsAreArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTags(&buf, Tags{Categories: []string{"light"}}, FormatJSON))

	assert.JSONEq(t, `{"categories":["light"],"materials":[]}`, buf.String())
}

func TestWriteTags_InvalidFormat(t *testing.T) {
	err := WriteTags(&bytes.Buffer{}, Tags{}, Format("xml"))
	assert.Error(t, err)
}
