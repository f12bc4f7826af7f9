// Package primitive wraps the synchronization objects under measurement
// behind a common init/acquire/release/destroy lifecycle.
package primitive

import "errors"

// Primitive is a lock-like object the measurement loop can drive.
// Init and Destroy bracket a run; Acquire blocks until the caller holds the
// primitive and Release gives it back.
type Primitive interface {
	Name() string
	Init() error
	Acquire()
	Release()
	Destroy()
}

var (
	ErrAlreadyInitialized = errors.New("primitive: already initialized")
	ErrInvalidCount       = errors.New("primitive: semaphore count must be positive")
)

func mustBeReady(ready bool, name string) {
	if !ready {
		panic("primitive: " + name + " used outside Init/Destroy")
	}
}
