//go:build !linux

package clock

import "time"

var epoch = time.Now()

// Now returns the runtime monotonic reading relative to process start.
func Now() uint64 {
	return uint64(time.Since(epoch))
}
