// Package logic provides parsing and evaluation of propositional-logic
// expressions.
//
// # Usage
//
//	stmt, err := logic.Parse("not A or B")
//	if err != nil {
//	    // handle error
//	}
//	result, err := stmt.Eval(logic.Assignment{"A": true, "B": false})
//
// # Grammar Overview
//
// The parser implements a recursive descent parser for infix
// propositional logic:
//
//	expression  → conditional
//	conditional → disjunction [("=>" | "<=>") disjunction]
//	disjunction → conjunction ["or" conjunction]
//	conjunction → unary ["and" unary]
//	unary       → "not" unary | atom
//	atom        → VARIABLE | "true" | "false" | "(" expression ")"
//
// Binary operators of equal binding strength may not be chained at the
// same nesting depth without parentheses, and "=>" may not be mixed
// with "<=>" at one depth; both cases are rejected as ambiguous.
package logic

// TokenType identifies the lexical class of a token.
type TokenType int

// Token types produced by the lexer.
const (
	TokenEOF TokenType = iota
	TokenIllegal

	// Atoms
	TokenVariable // single uppercase letter A-Z
	TokenTrue     // keyword "true"
	TokenFalse    // keyword "false"

	// Operators
	TokenNot     // keyword "not"
	TokenAnd     // keyword "and"
	TokenOr      // keyword "or"
	TokenImplies // "=>" or keyword "impl"
	TokenIff     // "<=>" or keyword "eq"

	// Delimiters
	TokenLParen
	TokenRParen
)

// tokenNames maps token types to display names used in error messages.
var tokenNames = map[TokenType]string{
	TokenEOF:      "end of expression",
	TokenIllegal:  "illegal character",
	TokenVariable: "variable",
	TokenTrue:     "'true'",
	TokenFalse:    "'false'",
	TokenNot:      "'not'",
	TokenAnd:      "'and'",
	TokenOr:       "'or'",
	TokenImplies:  "'=>'",
	TokenIff:      "'<=>'",
	TokenLParen:   "'('",
	TokenRParen:   "')'",
}

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown token"
}

// Position represents a location in the source expression.
type Position struct {
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (column > 0).
func (p Position) IsValid() bool {
	return p.Column > 0
}

// Token is a single lexical unit of an expression.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// keywords maps lowercased identifiers to their token types.
// The symbols "=>" and "<=>" have keyword spellings "impl" and "eq".
var keywords = map[string]TokenType{
	"not":   TokenNot,
	"and":   TokenAnd,
	"or":    TokenOr,
	"impl":  TokenImplies,
	"eq":    TokenIff,
	"true":  TokenTrue,
	"false": TokenFalse,
}

// LookupIdent returns the keyword token type for an identifier, or
// TokenIllegal if the identifier is not a keyword.
func LookupIdent(ident string) (TokenType, bool) {
	t, ok := keywords[ident]
	return t, ok
}
