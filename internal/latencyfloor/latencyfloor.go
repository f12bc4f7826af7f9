// Package latencyfloor asks the kernel to keep CPUs out of deep idle states
// while measurements run. Every failure here is non-fatal.
package latencyfloor

import "errors"

// DefaultPath is the Linux PM QoS device for the CPU DMA latency target.
const DefaultPath = "/dev/cpu_dma_latency"

// ErrUnavailable means the platform or host has no latency control device.
// Callers treat it as "feature off" and stay quiet about it.
var ErrUnavailable = errors.New("latencyfloor: not available")

// Handle keeps the latency request active until Close.
type Handle struct {
	fd   int
	path string
}

// Path returns the device the request was written to.
func (h *Handle) Path() string {
	if h == nil {
		return ""
	}
	return h.path
}
