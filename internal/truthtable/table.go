// Package truthtable builds exhaustive truth tables for parsed logical
// statements.
package truthtable

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leaplogic/internal/logic"
)

// DefaultMaxVariables bounds the number of distinct variables per
// table. Rows grow as 2^n, so the bound is a memory-safety contract
// rather than a grammar restriction.
const DefaultMaxVariables = 20

// minParallelRows is the smallest table worth splitting across workers.
const minParallelRows = 1024

// Options configures table construction.
type Options struct {
	// MaxVariables overrides DefaultMaxVariables when > 0.
	MaxVariables int

	// Workers sets the number of goroutines used to evaluate rows.
	// Values <= 1 evaluate sequentially. Row order in the resulting
	// table is identical either way.
	Workers int
}

// Row is one assignment of truth values plus each statement's result
// under that assignment.
type Row struct {
	// Values holds the assignment in universe order.
	Values []bool

	// Results holds one result per statement, in input order.
	Results []bool
}

// Table is an immutable, ordered truth table.
type Table struct {
	// Statements are the inputs the table was built from, in order.
	Statements []*logic.Statement

	// Variables is the variable universe: the deduplicated union of
	// all statement variables, ordered by first occurrence across
	// statements in the order they were supplied.
	Variables []string

	// Rows are the 2^len(Variables) rows. The first variable varies
	// slowest and row 0 assigns true to every variable, so rows run
	// from all-true down to all-false.
	Rows []Row
}

// Universe computes the variable universe for the given statements.
func Universe(statements []*logic.Statement) []string {
	var universe []string
	seen := make(map[string]bool)
	for _, stmt := range statements {
		for _, name := range stmt.Variables {
			if !seen[name] {
				seen[name] = true
				universe = append(universe, name)
			}
		}
	}
	return universe
}

// Build evaluates every statement against every possible assignment
// and returns the resulting table. Statements without variables
// contribute constant columns; if no statement has variables the table
// has exactly one row.
func Build(statements []*logic.Statement, opts Options) (*Table, error) {
	if len(statements) == 0 {
		return nil, fmt.Errorf("at least one statement is required")
	}

	maxVars := opts.MaxVariables
	if maxVars <= 0 {
		maxVars = DefaultMaxVariables
	}

	universe := Universe(statements)
	if len(universe) > maxVars {
		return nil, fmt.Errorf("%d distinct variables exceed the limit of %d (the table would have 2^%d rows)",
			len(universe), maxVars, len(universe))
	}

	total := 1 << len(universe)
	rows := make([]Row, total)

	if opts.Workers > 1 && total >= minParallelRows {
		if err := buildParallel(statements, universe, rows, opts.Workers); err != nil {
			return nil, err
		}
	} else {
		for i := range rows {
			row, err := buildRow(statements, universe, i)
			if err != nil {
				return nil, err
			}
			rows[i] = row
		}
	}

	return &Table{
		Statements: statements,
		Variables:  universe,
		Rows:       rows,
	}, nil
}

// buildParallel splits row evaluation into contiguous chunks, one per
// worker. Each worker writes rows by index, so ordering is preserved
// without any reordering step.
func buildParallel(statements []*logic.Statement, universe []string, rows []Row, workers int) error {
	var g errgroup.Group
	chunk := (len(rows) + workers - 1) / workers
	for start := 0; start < len(rows); start += chunk {
		start := start
		end := min(start+chunk, len(rows))
		g.Go(func() error {
			for i := start; i < end; i++ {
				row, err := buildRow(statements, universe, i)
				if err != nil {
					return err
				}
				rows[i] = row
			}
			return nil
		})
	}
	return g.Wait()
}

// buildRow derives the assignment for row i and evaluates every
// statement against it. Bit len(universe)-1-j of i corresponds to
// variable j; a zero bit means true, which makes row 0 all-true and
// puts rows in conventional descending truth-table order.
func buildRow(statements []*logic.Statement, universe []string, i int) (Row, error) {
	vars := make(logic.Assignment, len(universe))
	values := make([]bool, len(universe))
	for j, name := range universe {
		v := i>>(len(universe)-1-j)&1 == 0
		vars[name] = v
		values[j] = v
	}

	results := make([]bool, len(statements))
	for k, stmt := range statements {
		r, err := stmt.Eval(vars)
		if err != nil {
			// Only an incomplete assignment can fail here, which would
			// be a bug in universe construction.
			return Row{}, fmt.Errorf("evaluating %q: %w", stmt.Text, err)
		}
		results[k] = r
	}

	return Row{Values: values, Results: results}, nil
}
