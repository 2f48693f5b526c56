package logic

import (
	"errors"
	"fmt"
)

// MalformedError represents a grammar violation in a user-supplied
// expression: an unrecognized token, unmatched parentheses, a missing
// operand, ambiguous operator chaining, or trailing input. It is always
// surfaced to the caller and never silently recovered.
type MalformedError struct {
	// Expression is the offending source text.
	Expression string

	// Pos locates the violation within Expression, when known.
	Pos Position

	// Message is a human-readable description.
	Message string
}

func (e *MalformedError) Error() string {
	if e.Expression == "" {
		return fmt.Sprintf("malformed expression: %s", e.Message)
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("malformed expression %q at column %d: %s", e.Expression, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("malformed expression %q: %s", e.Expression, e.Message)
}

// IsMalformed returns true if the error is a MalformedError.
// Uses errors.As to handle wrapped errors.
func IsMalformed(err error) bool {
	var me *MalformedError
	return errors.As(err, &me)
}

// UnboundVariableError indicates that the evaluator was invoked with an
// assignment missing a variable the expression references. This is a
// caller contract violation, not bad user input: the table generator
// always supplies a complete assignment, so seeing this error means a
// bug in the calling code.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q: assignment does not cover the expression", e.Name)
}

// Common parse error messages.
const (
	errEmptyInput     = "empty expression"
	errUnmatchedParen = "unmatched opening parenthesis"
	errStrayParen     = "unexpected closing parenthesis"
	errAmbiguousCond  = "precedence is not defined between implication (=>) and equivalence (<=>) operators; use parentheses to clarify the statement"
)
