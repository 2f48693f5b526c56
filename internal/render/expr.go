package render

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leaplogic/internal/logic"
)

// operatorSymbols holds the display strings for one rendering mode.
type operatorSymbols struct {
	not     string
	and     string
	or      string
	implies string
	iff     string
	top     string // constant true
	bottom  string // constant false
}

// humanSymbols are the logic glyphs used by all text modes.
var humanSymbols = operatorSymbols{
	not:     "¬",
	and:     "∧",
	or:      "∨",
	implies: "⇒",
	iff:     "⇔",
	top:     "⊤",
	bottom:  "⊥",
}

// latexSymbols are the LaTeX math-mode macros.
var latexSymbols = operatorSymbols{
	not:     `\lnot `,
	and:     `\land`,
	or:      `\lor`,
	implies: `\Rightarrow`,
	iff:     `\Leftrightarrow`,
	top:     `\top`,
	bottom:  `\bot`,
}

// FormatExpr renders the canonical display form of an expression for
// the given mode, with operator glyphs and the minimum parentheses
// needed to re-read the expression unambiguously.
func FormatExpr(expr logic.Expr, mode Mode) string {
	symbols := humanSymbols
	if mode == ModeLaTeX {
		symbols = latexSymbols
	}
	return formatNode(expr, symbols)
}

func formatNode(expr logic.Expr, symbols operatorSymbols) string {
	switch e := expr.(type) {
	case *logic.VarExpr:
		return e.Name

	case *logic.LitExpr:
		if e.Value {
			return symbols.top
		}
		return symbols.bottom

	case *logic.UnaryExpr:
		operand := formatNode(e.Expr, symbols)
		if _, ok := e.Expr.(*logic.BinaryExpr); ok {
			operand = "(" + operand + ")"
		}
		return symbols.not + operand

	case *logic.BinaryExpr:
		left := formatOperand(e.Left, e.Op, symbols)
		right := formatOperand(e.Right, e.Op, symbols)
		return left + " " + operatorSymbol(e.Op, symbols) + " " + right
	}

	return fmt.Sprintf("%v", expr)
}

// formatOperand parenthesizes a binary operand whose operator binds no
// tighter than its parent. Equal tiers always need parentheses because
// the grammar forbids unparenthesized same-tier chains.
func formatOperand(expr logic.Expr, parent logic.Op, symbols operatorSymbols) string {
	s := formatNode(expr, symbols)
	if child, ok := expr.(*logic.BinaryExpr); ok && tier(child.Op) <= tier(parent) {
		return "(" + s + ")"
	}
	return s
}

// tier maps operators to binding-strength tiers. Implication and
// equivalence share the loosest tier since no precedence is defined
// between them.
func tier(op logic.Op) int {
	switch op {
	case logic.OpIff, logic.OpImplies:
		return 0
	case logic.OpOr:
		return 1
	case logic.OpAnd:
		return 2
	default:
		return 3
	}
}

func operatorSymbol(op logic.Op, symbols operatorSymbols) string {
	switch op {
	case logic.OpAnd:
		return symbols.and
	case logic.OpOr:
		return symbols.or
	case logic.OpImplies:
		return symbols.implies
	case logic.OpIff:
		return symbols.iff
	}
	return strings.TrimSpace(symbols.not)
}
