// Package obs holds counters describing the harness itself rather than the
// primitives it measures.
package obs

import (
	"sync/atomic"
	"time"
)

// DurationStat tracks count/total/min/max for observed durations.
// Operations are lock-free so it can be fed from any goroutine, but the
// measurement loop only ever touches it from its own.
type DurationStat struct {
	count   atomic.Uint64
	totalNs atomic.Uint64
	minNs   atomic.Uint64
	maxNs   atomic.Uint64
}

type DurationSnapshot struct {
	Count uint64
	Total time.Duration
	Avg   time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Observe records dt. Negative durations are recorded as zero.
func (d *DurationStat) Observe(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	ns := uint64(dt)
	// min is stored as ns+1 so that zero means "unset".
	enc := ns + 1
	d.count.Add(1)
	d.totalNs.Add(ns)

	for {
		prev := d.minNs.Load()
		if prev != 0 && enc >= prev {
			break
		}
		if d.minNs.CompareAndSwap(prev, enc) {
			break
		}
	}
	for {
		prev := d.maxNs.Load()
		if ns <= prev {
			return
		}
		if d.maxNs.CompareAndSwap(prev, ns) {
			return
		}
	}
}

func (d *DurationStat) Snapshot() DurationSnapshot {
	c := d.count.Load()
	total := time.Duration(d.totalNs.Load())
	var avg, minDur time.Duration
	if c > 0 {
		avg = time.Duration(uint64(total) / c)
	}
	if enc := d.minNs.Load(); enc > 0 {
		minDur = time.Duration(enc - 1)
	}
	return DurationSnapshot{
		Count: c,
		Total: total,
		Avg:   avg,
		Min:   minDur,
		Max:   time.Duration(d.maxNs.Load()),
	}
}
