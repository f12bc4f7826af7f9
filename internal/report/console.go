// Package report renders run results for humans and for downstream
// plotting scripts.
package report

import (
	"fmt"
	"io"

	"lockbench/internal/stats"
)

// WriteSummary prints one line describing s under tag.
func WriteSummary(w io.Writer, tag string, s stats.Summary) error {
	if s.Empty() {
		_, err := fmt.Fprintf(w, "[%s] amount=0 (No samples collected)\n", tag)
		return err
	}
	_, err := fmt.Fprintf(w, "[%s] amount=%d  min=%d ns  max=%d ns  avg=%.2f ns stddev=%.2f ns  p50=%d ns p90=%d ns p99=%d ns\n\n",
		tag, s.Count, s.Min, s.Max, s.Mean, s.StdDev, s.P50, s.P90, s.P99)
	return err
}
