package suite

import (
	"slices"
	"time"
)

// Latency summarises the evaluation times of a case or of a whole run.
type Latency struct {
	Samples int           `json:"samples"`
	Min     time.Duration `json:"min"`
	Mean    time.Duration `json:"mean"`
	P50     time.Duration `json:"p50"`
	P90     time.Duration `json:"p90"`
	P99     time.Duration `json:"p99"`
	Max     time.Duration `json:"max"`
}

// Timings collects durations as they are measured.
type Timings struct {
	samples []time.Duration
}

func (t *Timings) Add(d time.Duration) {
	t.samples = append(t.samples, d)
}

// Summary sorts the collected samples in place and reports nearest-rank percentiles.
func (t *Timings) Summary() Latency {
	n := len(t.samples)
	if n == 0 {
		return Latency{}
	}
	slices.Sort(t.samples)

	var sum time.Duration
	for _, d := range t.samples {
		sum += d
	}

	return Latency{
		Samples: n,
		Min:     t.samples[0],
		Mean:    sum / time.Duration(n),
		P50:     t.rank(50),
		P90:     t.rank(90),
		P99:     t.rank(99),
		Max:     t.samples[n-1],
	}
}

// rank returns the smallest sample with at least p percent of samples at or below it.
func (t *Timings) rank(p int) time.Duration {
	n := len(t.samples)
	idx := (p*n+99)/100 - 1
	return t.samples[min(max(idx, 0), n-1)]
}
