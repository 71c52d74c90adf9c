package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/arith-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/arith-hunter/internal/ast"
	"github.com/DjordjeVuckovic/arith-hunter/internal/calc"
)

const (
	Prompt      = `Enter the expression (or "exit" to exit): `
	ExitKeyword = "exit"
	ExitMessage = "Exit the program"

	DefaultMaxLineLength = 1 << 20
)

type Session struct {
	engine    *calc.Engine
	in        *bufio.Reader
	out       io.Writer
	printTree bool
	maxLine   int
}

type Option func(*Session)

// WithMaxLineLength sets the longest input line evaluated. Longer lines are
// reported and skipped.
func WithMaxLineLength(n int) Option {
	return func(s *Session) {
		s.maxLine = n
	}
}

// WithTree prints the expression tree before each result.
func WithTree() Option {
	return func(s *Session) {
		s.printTree = true
	}
}

func New(engine *calc.Engine, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		engine: engine,
		in:      bufio.NewReader(in),
		out:     out,
		maxLine: DefaultMaxLineLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the exit keyword or end of input. Evaluation errors are
// printed and the loop continues; only I/O failures and internal errors are returned.
func (s *Session) Run() error {
	for {
		if _, err := fmt.Fprint(s.out, Prompt); err != nil {
			return err
		}

		line, tooLong, err := s.readLine()
		if errors.Is(err, io.EOF) {
			_, err := fmt.Fprintln(s.out)
			return err
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if tooLong {
			if _, err := fmt.Fprintf(s.out, "input line exceeds %d bytes\n", s.maxLine); err != nil {
				return err
			}
			continue
		}

		if strings.EqualFold(strings.TrimSpace(line), ExitKeyword) {
			_, err := fmt.Fprintln(s.out, ExitMessage)
			return err
		}

		if err := s.Eval(line); err != nil {
			return err
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// maxLine is drained and reported through tooLong.
func (s *Session) readLine() (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, err := s.in.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > s.maxLine {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// Eval evaluates one line and writes the result or the error message.
func (s *Session) Eval(line string) error {
	tree, err := s.engine.Parse(line)
	if err != nil {
		return s.report(err)
	}

	if s.printTree {
		if err := ast.Print(s.out, tree); err != nil {
			return err
		}
	}

	v, err := s.engine.EvaluateTree(tree)
	if err != nil {
		return s.report(err)
	}

	_, err = fmt.Fprintln(s.out, calc.FormatNumber(v))
	return err
}

func (s *Session) report(err error) error {
	if _, ok := apperr.KindOf(err); !ok {
		return err
	}
	_, werr := fmt.Fprintln(s.out, err.Error())
	return werr
}
