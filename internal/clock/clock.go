// Package clock provides the monotonic nanosecond timestamp used to time
// primitive acquisitions.
package clock

import "time"

// Func returns nanoseconds since an arbitrary epoch. Successive readings
// never decrease but may be equal.
type Func func() uint64

// Sleeper blocks the calling goroutine for at least d.
type Sleeper func(d time.Duration)

// Sleep is the default Sleeper.
func Sleep(d time.Duration) {
	time.Sleep(d)
}

// Since returns the nanoseconds elapsed between start and end, clamped at zero
// so a misbehaving clock can never wrap a duration.
func Since(start, end uint64) uint64 {
	if end < start {
		return 0
	}
	return end - start
}
