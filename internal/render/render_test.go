package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplogic/internal/logic"
	"github.com/leapstack-labs/leaplogic/internal/render"
	"github.com/leapstack-labs/leaplogic/internal/truthtable"
)

func buildTable(t *testing.T, exprs ...string) *truthtable.Table {
	t.Helper()
	statements := make([]*logic.Statement, len(exprs))
	for i, expr := range exprs {
		stmt, err := logic.Parse(expr)
		require.NoError(t, err)
		statements[i] = stmt
	}
	tbl, err := truthtable.Build(statements, truthtable.Options{})
	require.NoError(t, err)
	return tbl
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"human", "latex", "markdown", "csv", "json"} {
		mode, err := render.ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, render.Mode(name), mode)
	}

	_, err := render.ParseMode("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "yaml"`)
	assert.Contains(t, err.Error(), "human|latex|markdown|csv|json")
}

func TestParseBoolPair(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFalse string
		wantTrue  string
		wantErr   bool
	}{
		{name: "digits", input: "0,1", wantFalse: "0", wantTrue: "1"},
		{name: "letters", input: "f,w", wantFalse: "f", wantTrue: "w"},
		{name: "words", input: "false,true", wantFalse: "false", wantTrue: "true"},
		{name: "missing comma", input: "FT", wantErr: true},
		{name: "empty false", input: ",T", wantErr: true},
		{name: "empty true", input: "F,", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			falseStr, trueStr, err := render.ParseBoolPair(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "malformed bool format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFalse, falseStr)
			assert.Equal(t, tt.wantTrue, trueStr)
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	tbl := buildTable(t, "A => B")

	var buf bytes.Buffer
	err := render.Render(&buf, tbl, render.Options{Mode: render.ModeMarkdown})
	require.NoError(t, err)

	newGoldie(t).Assert(t, "implication_markdown", buf.Bytes())
}

func TestRenderCSV(t *testing.T) {
	tbl := buildTable(t, "A => B")

	var buf bytes.Buffer
	err := render.Render(&buf, tbl, render.Options{Mode: render.ModeCSV})
	require.NoError(t, err)

	newGoldie(t).Assert(t, "implication_csv", buf.Bytes())
}

func TestRenderLaTeX(t *testing.T) {
	tbl := buildTable(t, "A => B")

	var buf bytes.Buffer
	err := render.Render(&buf, tbl, render.Options{
		Mode:     render.ModeLaTeX,
		FalseStr: "0",
		TrueStr:  "1",
	})
	require.NoError(t, err)

	newGoldie(t).Assert(t, "implication_latex", buf.Bytes())
}

func TestRenderMarkdownBoolOverride(t *testing.T) {
	tbl := buildTable(t, "not A")

	var buf bytes.Buffer
	err := render.Render(&buf, tbl, render.Options{
		Mode:     render.ModeMarkdown,
		FalseStr: "f",
		TrueStr:  "w",
	})
	require.NoError(t, err)

	newGoldie(t).Assert(t, "negation_markdown_fw", buf.Bytes())
}

func TestRenderSharedUniverse(t *testing.T) {
	// Two statements over the same variables share one table, with one
	// result column each.
	tbl := buildTable(t, "not A or B", "A => B")

	var buf bytes.Buffer
	err := render.Render(&buf, tbl, render.Options{
		Mode:     render.ModeMarkdown,
		FalseStr: "f",
		TrueStr:  "w",
	})
	require.NoError(t, err)

	newGoldie(t).Assert(t, "shared_universe_markdown_fw", buf.Bytes())
}

func TestRenderJSON(t *testing.T) {
	tbl := buildTable(t, "A and B")

	var buf bytes.Buffer
	err := render.Render(&buf, tbl, render.Options{Mode: render.ModeJSON})
	require.NoError(t, err)

	var decoded struct {
		Variables  []string `json:"variables"`
		Statements []string `json:"statements"`
		Rows       []struct {
			Values  []bool `json:"values"`
			Results []bool `json:"results"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, []string{"A", "B"}, decoded.Variables)
	assert.Equal(t, []string{"A ∧ B"}, decoded.Statements)
	require.Len(t, decoded.Rows, 4)
	assert.Equal(t, []bool{true, true}, decoded.Rows[0].Values)
	assert.Equal(t, []bool{true}, decoded.Rows[0].Results)
	assert.Equal(t, []bool{false, false}, decoded.Rows[3].Values)
	assert.Equal(t, []bool{false}, decoded.Rows[3].Results)
}

func TestRenderHumanContainsHeaderAndCells(t *testing.T) {
	// The human renderer delegates layout to go-pretty; assert on
	// content rather than exact bytes.
	tbl := buildTable(t, "A or B")

	var buf bytes.Buffer
	err := render.Render(&buf, tbl, render.Options{Mode: render.ModeHuman})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "A ∨ B")
	assert.Contains(t, out, "T")
	assert.Contains(t, out, "F")
}

func TestRenderCSVEscapesDelimiters(t *testing.T) {
	tbl := buildTable(t, "A")

	var buf bytes.Buffer
	err := render.Render(&buf, tbl, render.Options{
		Mode:     render.ModeCSV,
		FalseStr: "no,no",
		TrueStr:  `y"es`,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"no,no"`)
	assert.Contains(t, out, `"y""es"`)
}

func TestRenderDefaultsToHuman(t *testing.T) {
	tbl := buildTable(t, "A")

	var buf bytes.Buffer
	err := render.Render(&buf, tbl, render.Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, buf.String())
}
