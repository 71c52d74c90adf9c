package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes an indented dump of the tree to w:
//
//	BinOp:
//	  left:
//	    Num(2)
//	  op: PLUS
//	  right:
//	    Num(3)
func Print(w io.Writer, e Expr) error {
	return printNode(w, e, 0)
}

func printNode(w io.Writer, e Expr, level int) error {
	indent := strings.Repeat("  ", level)

	switch n := e.(type) {
	case *Literal:
		_, err := fmt.Fprintf(w, "%sNum(%d)\n", indent, n.Value)
		return err
	case *BinaryOp:
		if _, err := fmt.Fprintf(w, "%sBinOp:\n%s  left:\n", indent, indent); err != nil {
			return err
		}
		if err := printNode(w, n.Left, level+2); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s  op: %s\n%s  right:\n", indent, n.Op, indent); err != nil {
			return err
		}
		return printNode(w, n.Right, level+2)
	default:
		_, err := fmt.Fprintf(w, "%sUnknown node type: %T\n", indent, e)
		return err
	}
}

// String renders e as fully parenthesized infix, e.g. "((2 + 3) * 4)".
func String(e Expr) string {
	var b strings.Builder
	writeInfix(&b, e)
	return b.String()
}

func writeInfix(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Literal:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *BinaryOp:
		b.WriteByte('(')
		writeInfix(b, n.Left)
		b.WriteString(" " + n.Op.Symbol() + " ")
		writeInfix(b, n.Right)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "<%T>", e)
	}
}

// Node is the JSON form of an expression tree.
type Node struct {
	Type  string `json:"type"`
	Value *int64 `json:"value,omitempty"`
	Op    string `json:"op,omitempty"`
	Left  *Node  `json:"left,omitempty"`
	Right *Node  `json:"right,omitempty"`
	Pos   int    `json:"pos"`
}

// ToNode converts e into its JSON form. Unknown node types yield nil.
func ToNode(e Expr) *Node {
	switch n := e.(type) {
	case *Literal:
		v := n.Value
		return &Node{Type: "literal", Value: &v, Pos: n.Pos}
	case *BinaryOp:
		return &Node{
			Type:  "binary",
			Op:    n.Op.Symbol(),
			Left:  ToNode(n.Left),
			Right: ToNode(n.Right),
			Pos:   n.Pos,
		}
	default:
		return nil
	}
}
