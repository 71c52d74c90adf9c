package eval

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/DjordjeVuckovic/arith-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/arith-hunter/internal/ast"
)

// number is an intermediate result. Integer operands stay exact until a
// division produces a fraction; from then on the value is a float.
type number struct {
	i       int64
	f       float64
	isFloat bool
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// Evaluate walks the tree post-order and returns its value.
// Division is true division; a zero divisor is an arithmetic error.
// Addition, subtraction and multiplication of integers are exact and an
// int64 overflow is an arithmetic error, as is any infinite or NaN result.
func Evaluate(e ast.Expr) (float64, error) {
	n, err := evaluate(e)
	if err != nil {
		return 0, err
	}
	return n.float(), nil
}

func evaluate(e ast.Expr) (number, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return number{i: n.Value}, nil
	case *ast.BinaryOp:
		return evalBinary(n)
	default:
		return number{}, fmt.Errorf("%w: unknown node type %T", apperr.ErrInternal, e)
	}
}

func evalBinary(n *ast.BinaryOp) (number, error) {
	left, err := evaluate(n.Left)
	if err != nil {
		return number{}, err
	}
	right, err := evaluate(n.Right)
	if err != nil {
		return number{}, err
	}

	switch n.Op {
	case ast.Add, ast.Sub, ast.Mul:
		if !left.isFloat && !right.isFloat {
			v, ok := applyInt(n.Op, left.i, right.i)
			if !ok {
				return number{}, apperr.NewArithmetic(n.Pos, "integer overflow in %d %s %d", left.i, n.Op.Symbol(), right.i)
			}
			return number{i: v}, nil
		}
		return finite(n, applyFloat(n.Op, left.float(), right.float()))
	case ast.Div:
		if right.float() == 0 {
			return number{}, apperr.NewArithmetic(n.Pos, "division by zero")
		}
		if !left.isFloat && !right.isFloat && right.i != -1 && left.i%right.i == 0 {
			return number{i: left.i / right.i}, nil
		}
		return finite(n, left.float()/right.float())
	default:
		return number{}, fmt.Errorf("%w: unknown operator %d", apperr.ErrInternal, int(n.Op))
	}
}

func finite(n *ast.BinaryOp, v float64) (number, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return number{}, apperr.NewArithmetic(n.Pos, "result of %s out of range", n.Op.Symbol())
	}
	return number{f: v, isFloat: true}, nil
}

func applyFloat(op ast.Operator, l, r float64) float64 {
	switch op {
	case ast.Add:
		return l + r
	case ast.Sub:
		return l - r
	default:
		return l * r
	}
}

// applyInt reports false when the result does not fit in an int64.
func applyInt(op ast.Operator, l, r int64) (int64, bool) {
	switch op {
	case ast.Add:
		s := l + r
		return s, (s > l) == (r > 0)
	case ast.Sub:
		d := l - r
		return d, (d < l) == (r > 0)
	default:
		if l == 0 || r == 0 {
			return 0, true
		}
		neg := (l < 0) != (r < 0)
		hi, lo := bits.Mul64(abs(l), abs(r))
		if hi != 0 {
			return 0, false
		}
		if neg {
			if lo > 1<<63 {
				return 0, false
			}
			return int64(-lo), true
		}
		if lo > math.MaxInt64 {
			return 0, false
		}
		return int64(lo), true
	}
}

func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
