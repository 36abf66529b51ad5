package wallio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/patchwall/gridgraph"
	"github.com/katalvlaran/patchwall/patch"
	"github.com/katalvlaran/patchwall/wallio"
)

func solved(t *testing.T, prices patch.Prices, rows ...string) *patch.Result {
	t.Helper()
	g, err := gridgraph.NewGrid(rows, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	res, err := patch.Solve(g, prices, patch.WithPlan())
	require.NoError(t, err)
	return res
}

func TestWritePrice(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, wallio.WritePrice(&buf, 23))
	assert.Equal(t, "23\n", buf.String())
}

func TestWriteReport_Text(t *testing.T) {
	res := solved(t, patch.Prices{Double: 3, Simple: 2}, "**.", "..*")

	var buf bytes.Buffer
	require.NoError(t, wallio.WriteReport(&buf, res, wallio.FormatText))
	assert.Equal(t, "<>.\n..#\n"+
		"price: 5\n"+
		"repair cells: 3\n"+
		"double patches: 1\n"+
		"simple patches: 1\n"+
		"regions: 2\n"+
		"matching: kuhn\n", buf.String())
}

func TestWriteReport_TextSimpleOnly(t *testing.T) {
	res := solved(t, patch.Prices{Double: 9, Simple: 2}, "**")

	var buf bytes.Buffer
	require.NoError(t, wallio.WriteReport(&buf, res, ""))
	assert.Contains(t, buf.String(), "##\nprice: 4\n")
	assert.Contains(t, buf.String(), "matching: none (simple patches only)\n")
}

func TestWriteReport_YAML(t *testing.T) {
	res := solved(t, patch.Prices{Double: 3, Simple: 2}, "**", "*.")

	var buf bytes.Buffer
	require.NoError(t, wallio.WriteReport(&buf, res, wallio.FormatYAML))

	var got struct {
		Price   int64  `yaml:"price"`
		Doubles int    `yaml:"doubles"`
		RunID   string `yaml:"run_id"`
		Prices  struct {
			Double int64 `yaml:"double"`
			Simple int64 `yaml:"simple"`
		} `yaml:"prices"`
		Plan struct {
			Rows    []string `yaml:"rows"`
			Patches []struct {
				Kind  string   `yaml:"kind"`
				Cells [][2]int `yaml:"cells"`
			} `yaml:"patches"`
		} `yaml:"plan"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, int64(5), got.Price)
	assert.Equal(t, 1, got.Doubles)
	assert.Equal(t, res.RunID, got.RunID)
	assert.Equal(t, int64(3), got.Prices.Double)
	assert.Equal(t, []string{"^#", "v."}, got.Plan.Rows)
	require.Len(t, got.Plan.Patches, 2)
	assert.Equal(t, "double", got.Plan.Patches[0].Kind)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}}, got.Plan.Patches[0].Cells)
}

func TestWriteReport_UnknownFormat(t *testing.T) {
	res := solved(t, patch.Prices{Double: 3, Simple: 2}, "*")
	err := wallio.WriteReport(&bytes.Buffer{}, res, "xml")
	assert.ErrorIs(t, err, wallio.ErrUnknownFormat)

	_, err = wallio.ParseFormat("json")
	assert.ErrorIs(t, err, wallio.ErrUnknownFormat)
	f, err := wallio.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, wallio.FormatText, f)
}
