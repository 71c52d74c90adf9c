package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// (2 + 3) * 4
func sampleTree() Expr {
	return &BinaryOp{
		Op: Mul,
		Left: &BinaryOp{
			Op:    Add,
			Left:  &Literal{Value: 2, Pos: 1},
			Right: &Literal{Value: 3, Pos: 3},
			Pos:   2,
		},
		Right: &Literal{Value: 4, Pos: 6},
		Pos:   5,
	}
}

func TestPrint(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Print(&b, sampleTree()))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"BinOp:",
		"  left:",
		"    BinOp:",
		"      left:",
		"        Num(2)",
		"      op: PLUS",
		"      right:",
		"        Num(3)",
		"  op: MULTIPLY",
		"  right:",
		"    Num(4)",
	}, lines)
}

func TestPrint_Literal(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Print(&b, &Literal{Value: 42}))
	assert.Equal(t, "Num(42)\n", b.String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "((2 + 3) * 4)", String(sampleTree()))
	assert.Equal(t, "7", String(&Literal{Value: 7}))
}

func TestToNode(t *testing.T) {
	n := ToNode(sampleTree())
	require.NotNil(t, n)

	assert.Equal(t, "binary", n.Type)
	assert.Equal(t, "*", n.Op)
	assert.Equal(t, 5, n.Pos)
	require.NotNil(t, n.Left)
	assert.Equal(t, "+", n.Left.Op)
	require.NotNil(t, n.Right.Value)
	assert.Equal(t, int64(4), *n.Right.Value)
	assert.Nil(t, n.Right.Left)
}

func TestOperator(t *testing.T) {
	assert.Equal(t, "DIVIDE", Div.String())
	assert.Equal(t, "-", Sub.Symbol())
	assert.Equal(t, "UNKNOWN", Operator(42).String())
}
