package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplogic/internal/cli/config"
	"github.com/leapstack-labs/leaplogic/internal/logic"
	"github.com/leapstack-labs/leaplogic/internal/render"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPRESSION [NAME=VALUE ...]",
		Short: "Evaluate an expression under one assignment",
		Long: `Evaluate a single expression with every variable bound to a truth
value. Assignments take the form NAME=VALUE where VALUE is one of
true/false, t/f or 1/0.`,
		Example: `  leaplogic eval "A => B" A=true B=false
  leaplogic eval "not A or B" A=1 B=0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0], args[1:])
		},
	}
}

func runEval(cmd *cobra.Command, expr string, bindings []string) error {
	cfg := config.GetCurrentConfig()

	stmt, err := logic.Parse(expr)
	if err != nil {
		return err
	}

	assignment, err := parseAssignment(bindings)
	if err != nil {
		return err
	}

	if missing := missingVariables(stmt, assignment); len(missing) > 0 {
		return fmt.Errorf("missing assignment for variable(s) %s", strings.Join(missing, ", "))
	}

	result, err := stmt.Eval(assignment)
	if err != nil {
		return err
	}

	falseStr, trueStr, err := render.ParseBoolPair(cfg.Bool)
	if err != nil {
		return err
	}
	display := falseStr
	if result {
		display = trueStr
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), display)
	return err
}

// parseAssignment converts NAME=VALUE arguments into an assignment map.
func parseAssignment(bindings []string) (logic.Assignment, error) {
	assignment := make(logic.Assignment, len(bindings))
	for _, binding := range bindings {
		name, value, ok := strings.Cut(binding, "=")
		if !ok {
			return nil, fmt.Errorf("malformed assignment %q: expected NAME=VALUE", binding)
		}
		if len(name) != 1 || name[0] < 'A' || name[0] > 'Z' {
			return nil, fmt.Errorf("invalid variable name %q: must be a single uppercase letter", name)
		}

		b, err := parseTruthValue(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", name, err)
		}
		assignment[name] = b
	}
	return assignment, nil
}

func parseTruthValue(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "t", "1":
		return true, nil
	case "false", "f", "0":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a truth value (use true/false, t/f or 1/0)", s)
}

// missingVariables returns the statement's variables absent from the
// assignment, sorted for a stable error message.
func missingVariables(stmt *logic.Statement, assignment logic.Assignment) []string {
	var missing []string
	for _, name := range stmt.Variables {
		if _, ok := assignment[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}
