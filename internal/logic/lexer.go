package logic

import "strings"

// Lexer tokenizes expression input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() Position {
	return Position{Column: l.col, Offset: l.pos}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.currentPos()

	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Literal: "", Pos: pos}
	case '(':
		l.readChar()
		return Token{Type: TokenLParen, Literal: "(", Pos: pos}
	case ')':
		l.readChar()
		return Token{Type: TokenRParen, Literal: ")", Pos: pos}
	case '<':
		// "<=>" must win over "<" + "=>", so match it first.
		if l.peekChar() == '=' && l.peekAt(2) == '>' {
			l.readChar()
			l.readChar()
			l.readChar()
			return Token{Type: TokenIff, Literal: "<=>", Pos: pos}
		}
		l.readChar()
		return Token{Type: TokenIllegal, Literal: "<", Pos: pos}
	case '=':
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenImplies, Literal: "=>", Pos: pos}
		}
		l.readChar()
		return Token{Type: TokenIllegal, Literal: "=", Pos: pos}
	}

	if isLetter(l.ch) {
		literal := l.readIdentifier()
		if t, ok := LookupIdent(strings.ToLower(literal)); ok {
			return Token{Type: t, Literal: literal, Pos: pos}
		}
		if len(literal) == 1 && literal[0] >= 'A' && literal[0] <= 'Z' {
			return Token{Type: TokenVariable, Literal: literal, Pos: pos}
		}
		return Token{Type: TokenIllegal, Literal: literal, Pos: pos}
	}

	literal := string(l.ch)
	l.readChar()
	return Token{Type: TokenIllegal, Literal: literal, Pos: pos}
}

// peekAt returns the character n positions ahead of the current one
// without advancing.
func (l *Lexer) peekAt(n int) byte {
	idx := l.pos + n
	if idx >= len(l.input) {
		return 0
	}
	return l.input[idx]
}

// skipWhitespace skips whitespace. Whitespace only separates tokens and
// is never significant.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier reads a run of letters.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// isLetter returns true if ch is an ASCII letter.
func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// Tokenize returns all tokens from the input, ending with TokenEOF.
// An unrecognized character yields a MalformedError.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokenIllegal {
			return nil, &MalformedError{
				Expression: input,
				Pos:        tok.Pos,
				Message:    "unrecognized token " + quote(tok.Literal),
			}
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// quote wraps a literal in double quotes for error messages.
func quote(s string) string {
	return "\"" + s + "\""
}
