package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/prais/internal/catalog"
	"github.com/five82/prais/internal/report"
)

const catalogTOML = `
[[item]]
article = "A1"
name = "Стол"
category = "furniture"
material = "wood"
price = 1500

[[item]]
article = "B2"
name = "Стул"
category = "furniture"
material = "metal"
price = "800"

[[item]]
article = "C3"
name = "Лампа"
category = "light"
material = "metal"
price = 2300
`

// testOptions points every path into a temp dir so tests never touch HOME.
func testOptions(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	catalogPath := filepath.Join(dir, "prices.toml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalogTOML), 0o644))

	return Options{
		ConfigPath:  filepath.Join(dir, "config.toml"),
		PrefsPath:   filepath.Join(dir, "prefs.toml"),
		CatalogPath: catalogPath,
		LogFile:     filepath.Join(dir, "state", "prais.log"),
		LogLevel:    "debug",
	}
}

func TestList_FiltersAndSorts(t *testing.T) {
	opts := testOptions(t)

	var out bytes.Buffer
	err := List(context.Background(), opts, ListOptions{
		Material: "metal",
		Sort:     "price",
		Desc:     true,
		Format:   report.FormatText,
	}, &out)
	require.NoError(t, err)

	assert.Equal(t,
		"ARTICLE\tNAME\tCATEGORY\tMATERIAL\tPRICE ▼\n"+
			"C3\tЛампа\tlight\tmetal\t2\u00a0300\n"+
			"B2\tСтул\tfurniture\tmetal\t800\n"+
			"2/3 rows\n",
		out.String())
}

func TestList_SearchAndCategory(t *testing.T) {
	opts := testOptions(t)

	var out bytes.Buffer
	err := List(context.Background(), opts, ListOptions{
		Search:   "СТ",
		Category: "furniture",
		Sort:     "name",
		Format:   report.FormatText,
	}, &out)
	require.NoError(t, err)

	assert.Equal(t,
		"ARTICLE\tNAME ▲\tCATEGORY\tMATERIAL\tPRICE\n"+
			"A1\tСтол\tfurniture\twood\t1\u00a0500\n"+
			"B2\tСтул\tfurniture\tmetal\t800\n"+
			"2/3 rows\n",
		out.String())
}

func TestList_JSON(t *testing.T) {
	opts := testOptions(t)

	var out bytes.Buffer
	err := List(context.Background(), opts, ListOptions{Search: "ст", Format: report.FormatJSON}, &out)
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"id":0,"article":"A1","name":"Стол","category":"furniture","material":"wood","price":1500,"price_text":"1\u00a0500"},
		{"id":1,"article":"B2","name":"Стул","category":"furniture","material":"metal","price":800,"price_text":"800"}
	]`, out.String())
}

func TestList_InvalidSortColumn(t *testing.T) {
	opts := testOptions(t)

	err := List(context.Background(), opts, ListOptions{Sort: "weight"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sort column")
}

func TestList_NoCatalogConfigured(t *testing.T) {
	opts := testOptions(t)
	opts.CatalogPath = ""

	err := List(context.Background(), opts, ListOptions{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, catalog.ErrNoCatalog)
}

func TestList_CatalogFromConfig(t *testing.T) {
	opts := testOptions(t)
	config := "catalog = \"" + opts.CatalogPath + "\"\n"
	require.NoError(t, os.WriteFile(opts.ConfigPath, []byte(config), 0o644))
	opts.CatalogPath = ""

	var out bytes.Buffer
	require.NoError(t, List(context.Background(), opts, ListOptions{Category: "light"}, &out))
	assert.Contains(t, out.String(), "C3\tЛампа")
	assert.Contains(t, out.String(), "1/3 rows")
}

func TestTags(t *testing.T) {
	opts := testOptions(t)

	var out bytes.Buffer
	require.NoError(t, Tags(context.Background(), opts, report.FormatJSON, &out))
	assert.JSONEq(t, `{"categories":["furniture","light"],"materials":["wood","metal"]}`, out.String())
}

func TestLogs_ShowsCatalogLoaded(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, List(context.Background(), opts, ListOptions{}, &bytes.Buffer{}))

	var out bytes.Buffer
	require.NoError(t, Logs(opts, 10, "", &out))
	assert.Contains(t, out.String(), `msg="catalog loaded"`)
	assert.Contains(t, out.String(), "rows=3")

	out.Reset()
	require.NoError(t, Logs(opts, 10, "warn", &out))
	assert.Empty(t, out.String())
}

func TestLogs_MissingFileIsEmpty(t *testing.T) {
	opts := testOptions(t)

	var out bytes.Buffer
	require.NoError(t, Logs(opts, 10, "", &out))
	assert.Empty(t, out.String())
}

func TestList_CancelledContext(t *testing.T) {
	opts := testOptions(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := List(ctx, opts, ListOptions{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}
