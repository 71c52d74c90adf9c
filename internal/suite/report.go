package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/DjordjeVuckovic/arith-hunter/pkg/utils"
)

func WriteTable(r *Result, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s (run %s) ===\n\n", r.SuiteName, r.RunID)

	header := []string{"Case", "Expression", "Expected", "Got", "Status", "p50", "Max"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, c := range r.Cases {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		row := []string{
			c.ID,
			c.Expression,
			c.Expected,
			c.Got,
			status,
			fmtDuration(c.Latency.P50),
			fmtDuration(c.Latency.Max),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	total := r.Passed + r.Failed
	rate := 0.0
	if total > 0 {
		rate = utils.RoundDecimal(float64(r.Passed)/float64(total)*100, 2)
	}

	fmt.Fprintf(tw, "\nPassed %d/%d (%.2f%%), %d runs per case\n", r.Passed, total, rate, r.Runs)
	fmt.Fprintf(tw, "Latency: p50=%s p90=%s p99=%s max=%s\n",
		fmtDuration(r.Latency.P50),
		fmtDuration(r.Latency.P90),
		fmtDuration(r.Latency.P99),
		fmtDuration(r.Latency.Max),
	)

	tw.Flush()
}

func WriteJSON(r *Result, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func fmtDuration(d time.Duration) string {
	switch {
	case d == 0:
		return "-"
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1e3)
	default:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	}
}
