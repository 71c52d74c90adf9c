package calc

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const DefaultBatchConcurrency = 8

// Outcome is the result of one expression in a batch. Exactly one of Value or Err is meaningful.
type Outcome struct {
	Expression string
	Value      float64
	Err        error
}

// EvaluateBatch evaluates every expression with at most concurrency in flight
// and returns outcomes in input order. A failing expression does not stop the
// others; only ctx cancellation does, and then the context error is returned.
func (e *Engine) EvaluateBatch(ctx context.Context, expressions []string, concurrency int) ([]Outcome, error) {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	outcomes := make([]Outcome, len(expressions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, expr := range expressions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := e.Evaluate(expr)
			outcomes[i] = Outcome{Expression: expr, Value: v, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
