package primitive

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// Semaphore is a counting primitive. Acquire takes one permit, waiting if
// none is left; Release returns it.
type Semaphore struct {
	count int64
	sem   *semaphore.Weighted
}

// NewSemaphore returns a semaphore that will start with count permits.
func NewSemaphore(count int64) *Semaphore {
	return &Semaphore{count: count}
}

func (s *Semaphore) Name() string { return "sem" }

func (s *Semaphore) Init() error {
	if s.sem != nil {
		return ErrAlreadyInitialized
	}
	if s.count <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, s.count)
	}
	s.sem = semaphore.NewWeighted(s.count)
	return nil
}

func (s *Semaphore) Acquire() {
	mustBeReady(s.sem != nil, "sem")
	// Background is never cancelled, so Acquire only returns once a permit
	// is held.
	_ = s.sem.Acquire(context.Background(), 1)
}

func (s *Semaphore) Release() {
	mustBeReady(s.sem != nil, "sem")
	s.sem.Release(1)
}

// TryAcquire takes a permit without waiting and reports whether it did.
func (s *Semaphore) TryAcquire() bool {
	mustBeReady(s.sem != nil, "sem")
	return s.sem.TryAcquire(1)
}

func (s *Semaphore) Destroy() {
	s.sem = nil
}
