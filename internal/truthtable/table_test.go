package truthtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplogic/internal/logic"
	"github.com/leapstack-labs/leaplogic/internal/truthtable"
)

func parseAll(t *testing.T, exprs ...string) []*logic.Statement {
	t.Helper()
	statements := make([]*logic.Statement, len(exprs))
	for i, expr := range exprs {
		stmt, err := logic.Parse(expr)
		require.NoError(t, err)
		statements[i] = stmt
	}
	return statements
}

func TestUniverseOrder(t *testing.T) {
	tests := []struct {
		name  string
		exprs []string
		want  []string
	}{
		{
			name:  "single statement",
			exprs: []string{"A and B"},
			want:  []string{"A", "B"},
		},
		{
			name:  "first occurrence across statements",
			exprs: []string{"B or C", "A and B"},
			want:  []string{"B", "C", "A"},
		},
		{
			name:  "shared variables deduplicated",
			exprs: []string{"A => B", "B => A"},
			want:  []string{"A", "B"},
		},
		{
			name:  "no variables",
			exprs: []string{"true"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			universe := truthtable.Universe(parseAll(t, tt.exprs...))
			assert.Equal(t, tt.want, universe)
		})
	}
}

func TestBuildRowCount(t *testing.T) {
	tests := []struct {
		name     string
		exprs    []string
		wantRows int
	}{
		{name: "one variable", exprs: []string{"A"}, wantRows: 2},
		{name: "two variables", exprs: []string{"A and B"}, wantRows: 4},
		{name: "three variables across statements", exprs: []string{"A => B", "C"}, wantRows: 8},
		{name: "constant expression has one row", exprs: []string{"true and false"}, wantRows: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := truthtable.Build(parseAll(t, tt.exprs...), truthtable.Options{})
			require.NoError(t, err)
			assert.Len(t, tbl.Rows, tt.wantRows)
		})
	}
}

func TestBuildRowOrder(t *testing.T) {
	// The first variable varies slowest; row 0 is all-true and the last
	// row is all-false.
	tbl, err := truthtable.Build(parseAll(t, "A and B"), truthtable.Options{})
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B"}, tbl.Variables)
	require.Len(t, tbl.Rows, 4)

	assert.Equal(t, []bool{true, true}, tbl.Rows[0].Values)
	assert.Equal(t, []bool{true, false}, tbl.Rows[1].Values)
	assert.Equal(t, []bool{false, true}, tbl.Rows[2].Values)
	assert.Equal(t, []bool{false, false}, tbl.Rows[3].Values)

	assert.Equal(t, []bool{true}, tbl.Rows[0].Results)
	assert.Equal(t, []bool{false}, tbl.Rows[1].Results)
	assert.Equal(t, []bool{false}, tbl.Rows[2].Results)
	assert.Equal(t, []bool{false}, tbl.Rows[3].Results)
}

func TestBuildAssignmentsAreDistinctAndExhaustive(t *testing.T) {
	tbl, err := truthtable.Build(parseAll(t, "A or B or (C and D)"), truthtable.Options{})
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 16)

	seen := make(map[[4]bool]bool)
	for _, row := range tbl.Rows {
		require.Len(t, row.Values, 4)
		key := [4]bool{row.Values[0], row.Values[1], row.Values[2], row.Values[3]}
		assert.False(t, seen[key], "duplicate assignment %v", key)
		seen[key] = true
	}
	assert.Len(t, seen, 16)
}

func TestBuildMultipleStatements(t *testing.T) {
	tbl, err := truthtable.Build(parseAll(t, "A => B", "B => A"), truthtable.Options{})
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 4)
	for _, row := range tbl.Rows {
		assert.Len(t, row.Results, 2)
	}

	// Rows where A and B agree satisfy both implications.
	assert.Equal(t, []bool{true, true}, tbl.Rows[0].Results)
	assert.Equal(t, []bool{false, true}, tbl.Rows[1].Results)
	assert.Equal(t, []bool{true, false}, tbl.Rows[2].Results)
	assert.Equal(t, []bool{true, true}, tbl.Rows[3].Results)
}

func TestBuildRejectsEmptyInput(t *testing.T) {
	_, err := truthtable.Build(nil, truthtable.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one statement")
}

func TestBuildEnforcesVariableLimit(t *testing.T) {
	_, err := truthtable.Build(parseAll(t, "A and (B and C)"), truthtable.Options{MaxVariables: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceed the limit of 2")
}

func TestBuildParallelMatchesSequential(t *testing.T) {
	// 11 distinct variables force 2048 rows, past the parallel
	// threshold.
	exprs := []string{
		"A or B", "C and D", "E => F", "G <=> H", "I and (J or K)",
	}

	seq, err := truthtable.Build(parseAll(t, exprs...), truthtable.Options{Workers: 1})
	require.NoError(t, err)
	par, err := truthtable.Build(parseAll(t, exprs...), truthtable.Options{Workers: 4})
	require.NoError(t, err)

	require.Len(t, seq.Rows, 2048)
	require.Equal(t, len(seq.Rows), len(par.Rows))
	assert.Equal(t, seq.Variables, par.Variables)
	for i := range seq.Rows {
		assert.Equal(t, seq.Rows[i], par.Rows[i], "row %d", i)
	}
}
