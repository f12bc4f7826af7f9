package primitive

import "sync"

// Mutex is a mutual-exclusion lock.
type Mutex struct {
	mu    sync.Mutex
	ready bool
}

func NewMutex() *Mutex {
	return &Mutex{}
}

func (m *Mutex) Name() string { return "mutex" }

func (m *Mutex) Init() error {
	if m.ready {
		return ErrAlreadyInitialized
	}
	m.ready = true
	return nil
}

func (m *Mutex) Acquire() {
	mustBeReady(m.ready, "mutex")
	m.mu.Lock()
}

func (m *Mutex) Release() {
	mustBeReady(m.ready, "mutex")
	m.mu.Unlock()
}

func (m *Mutex) Destroy() {
	m.ready = false
}
