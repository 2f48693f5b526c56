package logic

// Eval returns the value of the variable under the assignment.
func (e *VarExpr) Eval(vars Assignment) (bool, error) {
	v, ok := vars[e.Name]
	if !ok {
		return false, &UnboundVariableError{Name: e.Name}
	}
	return v, nil
}

// Eval returns the constant value.
func (e *LitExpr) Eval(Assignment) (bool, error) {
	return e.Value, nil
}

// Eval negates the operand's value.
func (e *UnaryExpr) Eval(vars Assignment) (bool, error) {
	v, err := e.Expr.Eval(vars)
	if err != nil {
		return false, err
	}
	return !v, nil
}

// Eval applies the binary operator. Implication is material
// ((not l) or r) and equivalence is boolean equality.
func (e *BinaryExpr) Eval(vars Assignment) (bool, error) {
	l, err := e.Left.Eval(vars)
	if err != nil {
		return false, err
	}
	r, err := e.Right.Eval(vars)
	if err != nil {
		return false, err
	}
	switch e.Op {
	case OpAnd:
		return l && r, nil
	case OpOr:
		return l || r, nil
	case OpImplies:
		return !l || r, nil
	case OpIff:
		return l == r, nil
	}
	// Unreachable for trees built by the parser.
	return false, nil
}
