package suite

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/DjordjeVuckovic/arith-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/arith-hunter/internal/calc"
	"github.com/google/uuid"
)

type RunConfig struct {
	Runs   int
	Engine calc.Config
}

type CaseResult struct {
	ID         string       `json:"id"`
	Expression string       `json:"expression"`
	Passed     bool         `json:"passed"`
	Expected   string       `json:"expected"`
	Got        string       `json:"got"`
	Kind       apperr.Kind  `json:"kind,omitempty"`
	Latency    Latency      `json:"latency"`
}

type Result struct {
	RunID     uuid.UUID    `json:"run_id"`
	SuiteName string       `json:"suite_name"`
	StartedAt time.Time    `json:"started_at"`
	Runs      int          `json:"runs"`
	Cases     []CaseResult `json:"cases"`
	Passed    int          `json:"passed"`
	Failed    int          `json:"failed"`
	Latency   Latency      `json:"latency"`
}

// OK reports whether every case passed.
func (r *Result) OK() bool {
	return r.Failed == 0
}

// Run evaluates each case cfg.Runs times and compares the last outcome with the expectation.
func Run(ctx context.Context, s *Suite, cfg RunConfig) (*Result, error) {
	runs := max(cfg.Runs, 1)
	engine := calc.New(cfg.Engine)

	res := &Result{
		RunID:     uuid.New(),
		SuiteName: s.Name,
		StartedAt: time.Now(),
		Runs:      runs,
		Cases:     make([]CaseResult, 0, len(s.Cases)),
	}

	slog.Info("Running suite", "suite", s.Name, "cases", len(s.Cases), "runs", runs, "run_id", res.RunID)

	var overall Timings
	for _, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			value float64
			err   error
		)
		var timings Timings
		for i := 0; i < runs; i++ {
			start := time.Now()
			value, err = engine.Evaluate(c.Expression)
			d := time.Since(start)
			timings.Add(d)
			overall.Add(d)
		}

		cr, cerr := check(c, value, err, s.Tolerance)
		if cerr != nil {
			return nil, cerr
		}
		cr.Latency = timings.Summary()

		if cr.Passed {
			res.Passed++
		} else {
			res.Failed++
			slog.Warn("Case failed", "id", c.ID, "expected", cr.Expected, "got", cr.Got)
		}
		res.Cases = append(res.Cases, cr)
	}

	res.Latency = overall.Summary()
	return res, nil
}

func check(c Case, value float64, err error, tolerance float64) (CaseResult, error) {
	cr := CaseResult{ID: c.ID, Expression: c.Expression}

	if err != nil {
		kind, ok := apperr.KindOf(err)
		if !ok {
			return cr, fmt.Errorf("case %q: %w", c.ID, err)
		}
		cr.Kind = kind
		cr.Got = err.Error()
	} else {
		cr.Got = calc.FormatNumber(value)
	}

	if c.ExpectsError() {
		cr.Expected = c.Error + " error"
		cr.Passed = err != nil && cr.Kind == c.ErrorKind()
		return cr, nil
	}

	cr.Expected = calc.FormatNumber(*c.Expect)
	cr.Passed = err == nil && withinTolerance(value, *c.Expect, tolerance)
	return cr, nil
}

func withinTolerance(got, want, tolerance float64) bool {
	diff := math.Abs(got - want)
	return diff <= tolerance || diff <= tolerance*math.Abs(want)
}
