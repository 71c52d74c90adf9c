package token

type Type int

const (
	EOF Type = iota
	INTEGER
	PLUS
	MINUS
	MUL
	DIV
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case INTEGER:
		return "INTEGER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MUL:
		return "MULTIPLY"
	case DIV:
		return "DIVIDE"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type and literal value.
// Int holds the parsed value and is meaningful only for INTEGER tokens.
type Token struct {
	Type  Type
	Value string
	Int   int64
	Pos   int
}

func (t Token) String() string {
	if t.Type == INTEGER {
		return "Token(" + t.Type.String() + ", " + t.Value + ")"
	}
	if t.Type == EOF {
		return "Token(EOF)"
	}
	return "Token(" + t.Type.String() + ", '" + t.Value + "')"
}
