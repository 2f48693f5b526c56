package logic

import "fmt"

// parser turns a token stream into an expression tree.
//
// Each binary tier accepts at most one operator occurrence per nesting
// depth: a second occurrence of the same tier, or any mix of "=>" and
// "<=>" at one depth, is rejected as ambiguous rather than silently
// associated.
type parser struct {
	input string
	lexer *Lexer
	token Token // current token
	peek  Token // lookahead token

	vars []string // first-occurrence order
	seen map[string]bool
}

func newParser(input string) *parser {
	p := &parser{
		input: input,
		lexer: NewLexer(input),
		seen:  make(map[string]bool),
	}
	// Read two tokens to initialize current and peek.
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken advances to the next token.
func (p *parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *parser) check(t TokenType) bool {
	return p.token.Type == t
}

// errorf builds a MalformedError at the current token.
func (p *parser) errorf(format string, args ...any) error {
	return &MalformedError{
		Expression: p.input,
		Pos:        p.token.Pos,
		Message:    fmt.Sprintf(format, args...),
	}
}

// parse parses a complete expression and rejects trailing input.
func (p *parser) parse() (Expr, error) {
	if p.check(TokenEOF) {
		return nil, &MalformedError{Expression: p.input, Message: errEmptyInput}
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	switch p.token.Type {
	case TokenEOF:
		return expr, nil
	case TokenRParen:
		return nil, p.errorf(errStrayParen)
	case TokenIllegal:
		return nil, p.errorf("unrecognized token %q", p.token.Literal)
	default:
		return nil, p.errorf("unexpected %s after a complete expression", p.token.Type)
	}
}

func (p *parser) parseExpression() (Expr, error) {
	return p.parseConditional()
}

// parseConditional parses the "=>"/"<=>" tier. The two operators share
// one tier because no precedence is defined between them; neither may
// repeat nor mix at the same depth.
func (p *parser) parseConditional() (Expr, error) {
	left, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}

	if !p.check(TokenImplies) && !p.check(TokenIff) {
		return left, nil
	}

	op := OpImplies
	if p.check(TokenIff) {
		op = OpIff
	}
	p.nextToken()

	right, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}
	if p.check(TokenImplies) || p.check(TokenIff) {
		return nil, p.errorf(errAmbiguousCond)
	}

	return &BinaryExpr{Op: op, Left: left, Right: right}, nil
}

// parseDisjunction parses the "or" tier.
func (p *parser) parseDisjunction() (Expr, error) {
	left, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}

	if !p.check(TokenOr) {
		return left, nil
	}
	p.nextToken()

	right, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}
	if p.check(TokenOr) {
		return nil, p.errorf("ambiguous chain of 'or' operators; use parentheses to clarify the statement")
	}

	return &BinaryExpr{Op: OpOr, Left: left, Right: right}, nil
}

// parseConjunction parses the "and" tier.
func (p *parser) parseConjunction() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	if !p.check(TokenAnd) {
		return left, nil
	}
	p.nextToken()

	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.check(TokenAnd) {
		return nil, p.errorf("ambiguous chain of 'and' operators; use parentheses to clarify the statement")
	}

	return &BinaryExpr{Op: OpAnd, Left: left, Right: right}, nil
}

// parseUnary parses any number of "not" prefixes followed by an atom.
func (p *parser) parseUnary() (Expr, error) {
	if p.check(TokenNot) {
		p.nextToken()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: OpNot, Expr: operand}, nil
	}
	return p.parseAtom()
}

// parseAtom parses a variable, a boolean constant, or a parenthesized
// sub-expression.
func (p *parser) parseAtom() (Expr, error) {
	switch p.token.Type {
	case TokenVariable:
		name := p.token.Literal
		if !p.seen[name] {
			p.seen[name] = true
			p.vars = append(p.vars, name)
		}
		p.nextToken()
		return &VarExpr{Name: name}, nil

	case TokenTrue:
		p.nextToken()
		return &LitExpr{Value: true}, nil

	case TokenFalse:
		p.nextToken()
		return &LitExpr{Value: false}, nil

	case TokenLParen:
		open := p.token.Pos
		p.nextToken()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.check(TokenRParen) {
			return nil, &MalformedError{
				Expression: p.input,
				Pos:        open,
				Message:    errUnmatchedParen,
			}
		}
		p.nextToken()
		return expr, nil

	case TokenIllegal:
		return nil, p.errorf("unrecognized token %q", p.token.Literal)

	default:
		return nil, p.errorf("expected an operand, found %s", p.token.Type)
	}
}
