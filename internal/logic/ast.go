package logic

// Op identifies a logical operator.
type Op int

// Logical operators, ordered by binding strength (loosest first).
const (
	OpIff Op = iota // <=>
	OpImplies
	OpOr
	OpAnd
	OpNot
)

// String returns the source spelling of the operator.
func (op Op) String() string {
	switch op {
	case OpIff:
		return "<=>"
	case OpImplies:
		return "=>"
	case OpOr:
		return "or"
	case OpAnd:
		return "and"
	case OpNot:
		return "not"
	}
	return "?"
}

// Expr is a node of a parsed expression tree. The tree is acyclic and
// immutable after construction; each node exclusively owns its children.
type Expr interface {
	// Eval computes the node's truth value under the given assignment.
	Eval(vars Assignment) (bool, error)

	exprNode()
}

// Assignment maps variable names to truth values.
type Assignment map[string]bool

// VarExpr is a leaf node referencing one variable.
type VarExpr struct {
	Name string
}

// LitExpr is a leaf node holding a boolean constant.
type LitExpr struct {
	Value bool
}

// UnaryExpr is a negation node.
type UnaryExpr struct {
	Op   Op // always OpNot
	Expr Expr
}

// BinaryExpr applies a binary operator to two sub-expressions.
type BinaryExpr struct {
	Op    Op // OpAnd, OpOr, OpImplies, or OpIff
	Left  Expr
	Right Expr
}

func (*VarExpr) exprNode()    {}
func (*LitExpr) exprNode()    {}
func (*UnaryExpr) exprNode()  {}
func (*BinaryExpr) exprNode() {}
