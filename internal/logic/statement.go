package logic

// Statement is a parsed, validated logical expression together with
// the variables it references.
type Statement struct {
	// Text is the original source text of the expression.
	Text string

	// Root is the root of the expression tree.
	Root Expr

	// Variables lists the distinct variable names referenced by the
	// expression, in order of first occurrence in the source. Consumers
	// depend on this ordering for column layout and row enumeration.
	Variables []string
}

// Parse parses an infix logical expression into a Statement.
// It returns a *MalformedError describing the specific grammar
// violation when the expression does not conform to the grammar.
func Parse(text string) (*Statement, error) {
	p := newParser(text)
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Statement{
		Text:      text,
		Root:      root,
		Variables: p.vars,
	}, nil
}

// Eval evaluates the statement under the given assignment. Every
// variable in s.Variables must be present in vars; a missing variable
// returns an *UnboundVariableError.
func (s *Statement) Eval(vars Assignment) (bool, error) {
	return s.Root.Eval(vars)
}
