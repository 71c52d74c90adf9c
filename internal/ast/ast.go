package ast

import "github.com/DjordjeVuckovic/arith-hunter/internal/token"

// Expr is a node of the expression tree. The variant set is closed:
// *Literal and *BinaryOp are the only implementations.
type Expr interface {
	Position() int
	exprNode()
}

type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

func (o Operator) String() string {
	switch o {
	case Add:
		return "PLUS"
	case Sub:
		return "MINUS"
	case Mul:
		return "MULTIPLY"
	case Div:
		return "DIVIDE"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the operator as written in source.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

// OperatorFor maps an operator token type onto an Operator.
func OperatorFor(t token.Type) (Operator, bool) {
	switch t {
	case token.PLUS:
		return Add, true
	case token.MINUS:
		return Sub, true
	case token.MUL:
		return Mul, true
	case token.DIV:
		return Div, true
	default:
		return 0, false
	}
}

// Literal is an integer constant.
type Literal struct {
	Value int64
	Pos   int
}

func (l *Literal) Position() int { return l.Pos }
func (l *Literal) exprNode()     {}

// BinaryOp applies Op to the values of Left and Right. Pos is the operator's offset.
type BinaryOp struct {
	Op    Operator
	Left  Expr
	Right Expr
	Pos   int
}

func (b *BinaryOp) Position() int { return b.Pos }
func (b *BinaryOp) exprNode()     {}
