package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplogic/internal/cli/config"
	"github.com/leapstack-labs/leaplogic/internal/logic"
	"github.com/leapstack-labs/leaplogic/internal/render"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check EXPRESSION [EXPRESSION ...]",
		Short: "Validate expressions without building a table",
		Long: `Parse each expression and report syntax problems. Nothing is
evaluated; the command exits non-zero if any expression is malformed.`,
		Example: `  leaplogic check "A => B" "not (A and B)"
  leaplogic check "A <=> B <=> C"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}
}

func runCheck(cmd *cobra.Command, exprs []string) error {
	logger := config.GetLogger(cmd.Context())

	failures := 0
	for _, expr := range exprs {
		stmt, err := logic.Parse(expr)
		if err != nil {
			failures++
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "error: %v\n", err)
			continue
		}
		logger.Debug("expression parsed",
			"expression", expr,
			"variables", len(stmt.Variables))
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", render.FormatExpr(stmt.Root, render.ModeHuman))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d expression(s) malformed", failures, len(exprs))
	}
	return nil
}
