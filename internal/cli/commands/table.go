// Package commands implements the leaplogic subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplogic/internal/cli/config"
	"github.com/leapstack-labs/leaplogic/internal/logic"
	"github.com/leapstack-labs/leaplogic/internal/render"
	"github.com/leapstack-labs/leaplogic/internal/truthtable"
)

// NewTableCommand creates the table command.
func NewTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table EXPRESSION [EXPRESSION ...]",
		Short: "Render the truth table for one or more expressions",
		Long: `Parse each expression, collect the distinct variables across all of
them, and render one truth table with a result column per expression.

Variables are single uppercase letters. Columns appear in order of
first occurrence across the expressions; the first variable varies
slowest, so the all-true row comes first.`,
		Example: `  # Single expression
  leaplogic table "not A or B"

  # Several statements share one table
  leaplogic table "A => B" "B => A"

  # LaTeX output with 0/1 cells
  leaplogic table -f latex -b "0,1" "(A <=> B) and (B <=> C)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunTable(cmd, args)
		},
	}
}

// RunTable parses the given expressions, builds their joint truth table
// and renders it to the command's stdout. The root command delegates
// here when invoked with positional arguments.
func RunTable(cmd *cobra.Command, exprs []string) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())

	statements := make([]*logic.Statement, 0, len(exprs))
	for _, expr := range exprs {
		stmt, err := logic.Parse(expr)
		if err != nil {
			return err
		}
		statements = append(statements, stmt)
	}

	tbl, err := truthtable.Build(statements, cfg.TableOptions())
	if err != nil {
		return err
	}
	logger.Debug("built truth table",
		"statements", len(tbl.Statements),
		"variables", len(tbl.Variables),
		"rows", len(tbl.Rows))

	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	if err := render.Render(cmd.OutOrStdout(), tbl, opts); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
