package parser

import (
	"github.com/DjordjeVuckovic/arith-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/arith-hunter/internal/ast"
	"github.com/DjordjeVuckovic/arith-hunter/internal/token"
)

// Grammar:
//
//	expr   : term ((PLUS | MINUS | MUL | DIV) term)*
//	term   : factor ((MUL | DIV) factor)*
//	factor : INTEGER | LPAREN expr RPAREN
//
// The expr loop also accepts MUL and DIV. term always drains those first,
// so the extra arms never change the resulting tree.
type Parser struct {
	src     token.Source
	current token.Token

	allowTrailing bool
	maxDepth      int
	depth         int
}

type Option func(*Parser)

// AllowTrailing stops ParseExpression from rejecting tokens left after a complete expression.
func AllowTrailing() Option {
	return func(p *Parser) {
		p.allowTrailing = true
	}
}

// WithMaxDepth limits parenthesis nesting. Zero or negative means unlimited.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// New creates a Parser that pulls tokens from src on demand.
func New(src token.Source, opts ...Option) *Parser {
	p := &Parser{src: src}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseExpression parses one complete expression and returns the root of its tree.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	node, err := p.expr()
	if err != nil {
		return nil, err
	}

	if !p.allowTrailing && p.current.Type != token.EOF {
		return nil, apperr.NewParsing(p.current.Pos, "unexpected token %s after expression", p.current.Type)
	}

	return node, nil
}

func (p *Parser) advance() error {
	tok, err := p.src.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *Parser) eat(expected token.Type) error {
	if p.current.Type != expected {
		return apperr.NewParsing(p.current.Pos, "expected %s, got %s", expected, p.current.Type)
	}
	return p.advance()
}

func (p *Parser) factor() (ast.Expr, error) {
	tok := p.current

	switch tok.Type {
	case token.INTEGER:
		if err := p.eat(token.INTEGER); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: tok.Int, Pos: tok.Pos}, nil

	case token.LPAREN:
		return p.group(tok)

	default:
		return nil, apperr.NewParsing(tok.Pos, "unexpected token %s in factor position", tok.Type)
	}
}

func (p *Parser) group(open token.Token) (ast.Expr, error) {
	p.depth++
	defer func() { p.depth-- }()

	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return nil, apperr.NewParsing(open.Pos, "expression nested deeper than %d levels", p.maxDepth)
	}
	if err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) term() (ast.Expr, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.current.Type == token.MUL || p.current.Type == token.DIV {
		node, err = p.fold(node, p.factor)
		if err != nil {
			return nil, err
		}
	}

	return node, nil
}

func (p *Parser) expr() (ast.Expr, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}

	for isExprOperator(p.current.Type) {
		node, err = p.fold(node, p.term)
		if err != nil {
			return nil, err
		}
	}

	return node, nil
}

// fold consumes the current operator, parses the right operand with next
// and returns a BinaryOp with left as its left child.
func (p *Parser) fold(left ast.Expr, next func() (ast.Expr, error)) (ast.Expr, error) {
	opTok := p.current
	op, ok := ast.OperatorFor(opTok.Type)
	if !ok {
		return nil, apperr.NewParsing(opTok.Pos, "unexpected token %s, expected operator", opTok.Type)
	}
	if err := p.eat(opTok.Type); err != nil {
		return nil, err
	}

	right, err := next()
	if err != nil {
		return nil, err
	}

	return &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: opTok.Pos}, nil
}

func isExprOperator(t token.Type) bool {
	switch t {
	case token.PLUS, token.MINUS, token.MUL, token.DIV:
		return true
	default:
		return false
	}
}
