package calc

import (
	"strconv"

	"github.com/DjordjeVuckovic/arith-hunter/internal/ast"
	"github.com/DjordjeVuckovic/arith-hunter/internal/eval"
	"github.com/DjordjeVuckovic/arith-hunter/internal/parser"
	"github.com/DjordjeVuckovic/arith-hunter/internal/token"
)

// Config tunes how source text is parsed. The zero value requires the whole
// input to be consumed and puts no limit on nesting.
type Config struct {
	AllowTrailing bool
	MaxDepth      int
}

// Engine evaluates source text. It holds only configuration, so one Engine
// may be shared by concurrent callers; every call builds its own scanner and parser.
type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

var defaultEngine = New(Config{})

// EvaluateSource scans, parses and evaluates text with the default configuration.
func EvaluateSource(text string) (float64, error) {
	return defaultEngine.Evaluate(text)
}

// Parse builds the expression tree for text.
func (e *Engine) Parse(text string) (ast.Expr, error) {
	var opts []parser.Option
	if e.cfg.AllowTrailing {
		opts = append(opts, parser.AllowTrailing())
	}
	if e.cfg.MaxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(e.cfg.MaxDepth))
	}

	return parser.New(token.NewScanner(text), opts...).ParseExpression()
}

func (e *Engine) Evaluate(text string) (float64, error) {
	tree, err := e.Parse(text)
	if err != nil {
		return 0, err
	}
	return e.EvaluateTree(tree)
}

// EvaluateTree evaluates an already parsed tree.
func (e *Engine) EvaluateTree(tree ast.Expr) (float64, error) {
	return eval.Evaluate(tree)
}

// FormatNumber renders v in its shortest decimal form: 5, 3.5, 0.3333333333333333.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
