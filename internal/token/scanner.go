package token

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/arith-hunter/internal/apperr"
)

// MaxInteger is the largest literal accepted. Every literal up to it has an
// exact float64 representation.
const MaxInteger = 1 << 53

// Scanner breaks arithmetic source text into tokens, one per NextToken call.
type Scanner struct {
	input string
	pos   int
}

// NewScanner creates a new Scanner positioned at the start of input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input, pos: 0}
}

// NextToken returns the next token in the input.
// Example: `(12 + 3) / 4` yields LPAREN INTEGER(12) PLUS INTEGER(3) RPAREN DIV INTEGER(4) EOF.
func (s *Scanner) NextToken() (Token, error) {
	s.skipWhitespace()

	if s.pos >= len(s.input) {
		return Token{Type: EOF, Pos: len(s.input)}, nil
	}

	ch := s.input[s.pos]
	if isDigit(ch) {
		return s.readInteger()
	}

	var typ Type
	switch ch {
	case '+':
		typ = PLUS
	case '-':
		typ = MINUS
	case '*':
		typ = MUL
	case '/':
		typ = DIV
	case '(':
		typ = LPAREN
	case ')':
		typ = RPAREN
	default:
		r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
		return Token{}, apperr.NewLexical(s.pos, "unexpected character %q", r)
	}

	tok := Token{Type: typ, Value: s.input[s.pos : s.pos+1], Pos: s.pos}
	s.pos++
	return tok, nil
}

func (s *Scanner) skipWhitespace() {
	for s.pos < len(s.input) {
		r, size := utf8.DecodeRuneInString(s.input[s.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		s.pos += size
	}
}

func (s *Scanner) readInteger() (Token, error) {
	start := s.pos
	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		s.pos++
	}

	digits := s.input[start:s.pos]
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n > MaxInteger {
		return Token{}, apperr.NewLexical(start, "integer literal %s out of range", digits)
	}

	return Token{Type: INTEGER, Value: digits, Int: n, Pos: start}, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
