package samples

import (
	"errors"
	"fmt"
)

// MaxCapacity bounds a single buffer at 64 MiB of samples.
const MaxCapacity = 8 << 20

var ErrInvalidCapacity = errors.New("samples: invalid capacity")

// Buffer is a fixed-capacity sequence of nanosecond durations. The backing
// array is allocated once in New and never grows.
type Buffer struct {
	vals []uint64
	n    int
}

// New allocates a buffer holding at most capacity samples.
func New(capacity int) (*Buffer, error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidCapacity, capacity, MaxCapacity)
	}
	return &Buffer{vals: make([]uint64, capacity)}, nil
}

// Append stores v and reports true, or reports false without touching the
// buffer once it is full.
func (b *Buffer) Append(v uint64) bool {
	if b.n >= len(b.vals) {
		return false
	}
	b.vals[b.n] = v
	b.n++
	return true
}

func (b *Buffer) Len() int { return b.n }

func (b *Buffer) Cap() int { return len(b.vals) }

func (b *Buffer) Full() bool { return b.n >= len(b.vals) }

// Values returns the recorded samples in append order. The slice aliases the
// buffer and must not be modified.
func (b *Buffer) Values() []uint64 {
	return b.vals[:b.n:b.n]
}

// Reset drops all samples while keeping the storage.
func (b *Buffer) Reset() {
	b.n = 0
}
