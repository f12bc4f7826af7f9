// Package stats summarizes a run's latency samples.
package stats

import (
	"math"
	"math/bits"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Summary is a descriptive snapshot of one run. When Count is zero every
// other field is meaningless and left at its zero value.
type Summary struct {
	Count  int
	Min    uint64
	Max    uint64
	Mean   float64
	StdDev float64

	P50 uint64
	P90 uint64
	P99 uint64
}

func (s Summary) Empty() bool {
	return s.Count == 0
}

const (
	histogramSigFigs = 3
	// Samples above this are clamped before they reach the histogram; it is
	// roughly 146 years in nanoseconds.
	histogramMaxValue = int64(1)<<62 - 1
)

// Summarize computes the summary of values. StdDev is the population
// standard deviation (divides by n, not n-1).
func Summarize(values []uint64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	minv, maxv := uint64(math.MaxUint64), uint64(0)
	// 128-bit running sum; exact for any input that fits in memory.
	var hi, lo uint64
	for _, x := range values {
		if x < minv {
			minv = x
		}
		if x > maxv {
			maxv = x
		}
		var carry uint64
		lo, carry = bits.Add64(lo, x, 0)
		hi += carry
	}
	// hi < n because every term is below 2^64, so Div64 cannot overflow.
	q, r := bits.Div64(hi, lo, uint64(n))
	mean := float64(q) + float64(r)/float64(n)

	// Neumaier-compensated sum of squared deviations.
	var sum, comp float64
	for _, x := range values {
		d := float64(x) - mean
		sq := d * d
		t := sum + sq
		if math.Abs(sum) >= sq {
			comp += (sum - t) + sq
		} else {
			comp += (sq - t) + sum
		}
		sum = t
	}
	variance := (sum + comp) / float64(n)

	s := Summary{
		Count:  n,
		Min:    minv,
		Max:    maxv,
		Mean:   mean,
		StdDev: math.Sqrt(variance),
	}
	s.P50, s.P90, s.P99 = percentiles(values, maxv)
	return s
}

func percentiles(values []uint64, maxv uint64) (p50, p90, p99 uint64) {
	highest := int64(2)
	if maxv > uint64(histogramMaxValue) {
		highest = histogramMaxValue
	} else if int64(maxv) > highest {
		highest = int64(maxv)
	}
	h := hdrhistogram.New(1, highest, histogramSigFigs)
	for _, x := range values {
		v := highest
		if x < uint64(highest) {
			v = int64(x)
		}
		// v is within [0, highest], which the histogram was sized for.
		_ = h.RecordValue(v)
	}
	return clampQuantile(h, 50, maxv), clampQuantile(h, 90, maxv), clampQuantile(h, 99, maxv)
}

// clampQuantile keeps histogram bucket rounding from reporting a value above
// the observed maximum.
func clampQuantile(h *hdrhistogram.Histogram, q float64, maxv uint64) uint64 {
	v := h.ValueAtQuantile(q)
	if v < 0 {
		return 0
	}
	if uint64(v) > maxv {
		return maxv
	}
	return uint64(v)
}
