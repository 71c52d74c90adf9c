package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/arith-hunter/internal/ast"
	"github.com/DjordjeVuckovic/arith-hunter/internal/calc"
	"github.com/DjordjeVuckovic/arith-hunter/internal/repl"
)

type cliConfig struct {
	Expression    string
	PrintTree     bool
	AllowTrailing bool
	MaxDepth      int
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Expression, "e", "", "Evaluate a single expression and exit")
	flag.BoolVar(&cfg.PrintTree, "tree", false, "Print the expression tree before the result")
	flag.BoolVar(&cfg.AllowTrailing, "allow-trailing", false, "Ignore tokens after a complete expression")
	flag.IntVar(&cfg.MaxDepth, "max-depth", 0, "Maximum parenthesis nesting, 0 for unlimited")

	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	engine := calc.New(calc.Config{
		AllowTrailing: cfg.AllowTrailing,
		MaxDepth:      cfg.MaxDepth,
	})

	if cfg.Expression != "" {
		runOnce(engine, cfg)
		return
	}

	var opts []repl.Option
	if cfg.PrintTree {
		opts = append(opts, repl.WithTree())
	}

	if err := repl.New(engine, os.Stdin, os.Stdout, opts...).Run(); err != nil {
		slog.Error("REPL failed", "error", err)
		os.Exit(1)
	}
}

func runOnce(engine *calc.Engine, cfg cliConfig) {
	tree, err := engine.Parse(cfg.Expression)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.PrintTree {
		if err := ast.Print(os.Stdout, tree); err != nil {
			slog.Error("Failed to print tree", "error", err)
			os.Exit(1)
		}
	}

	v, err := engine.EvaluateTree(tree)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Println(calc.FormatNumber(v))
}
