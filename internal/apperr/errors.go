package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed request before any evaluation runs.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// Kind classifies an evaluation failure by the stage that raised it.
type Kind string

const (
	KindLexical    Kind = "lexical"
	KindParsing    Kind = "parsing"
	KindArithmetic Kind = "arithmetic"
)

func (k Kind) Error() string {
	return string(k) + " error"
}

// Sentinels for errors.Is. An *EvalError matches the sentinel of its kind.
var (
	ErrLexical    error = KindLexical
	ErrParsing    error = KindParsing
	ErrArithmetic error = KindArithmetic

	// ErrInternal marks a broken invariant (e.g. an unknown tree node), never bad input.
	ErrInternal = errors.New("internal evaluator error")
)

// ParseKind maps a textual kind ("lexical", "parsing", "arithmetic") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindLexical, KindParsing, KindArithmetic:
		return k, nil
	default:
		return "", fmt.Errorf("unknown error kind %q", s)
	}
}

// EvalError is the single error type produced by the scanner, parser and evaluator.
// Pos is the byte offset in the source the error refers to, or -1 when unknown.
type EvalError struct {
	Kind    Kind
	Message string
	Pos     int
}

func (e *EvalError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s: %s at position %d", e.Kind.Error(), e.Message, e.Pos)
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Message)
}

func (e *EvalError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func NewLexical(pos int, format string, args ...any) *EvalError {
	return &EvalError{Kind: KindLexical, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func NewParsing(pos int, format string, args ...any) *EvalError {
	return &EvalError{Kind: KindParsing, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func NewArithmetic(pos int, format string, args ...any) *EvalError {
	return &EvalError{Kind: KindArithmetic, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// KindOf returns the kind of the first EvalError in err's chain.
func KindOf(err error) (Kind, bool) {
	var ee *EvalError
	if errors.As(err, &ee) {
		return ee.Kind, true
	}
	return "", false
}
