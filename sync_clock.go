package hlc

import (
	"cmp"
	"sync"
)

// SyncClock is a thread-safe wrapper around a Clock.
type SyncClock[T Time[T, D], D cmp.Ordered] struct {
	mu    sync.Mutex
	clock *Clock[T, D]
}

func NewSyncClock[T Time[T, D], D cmp.Ordered](clock *Clock[T, D]) *SyncClock[T, D] {
	return &SyncClock[T, D]{clock: clock}
}

func (s *SyncClock[T, D]) Now() (Timestamp[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Now()
}

func (s *SyncClock[T, D]) Observe(remote Timestamp[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Observe(remote)
}

func (s *SyncClock[T, D]) Receive(remote Timestamp[T]) (Timestamp[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Receive(remote)
}

func (s *SyncClock[T, D]) Last() Timestamp[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Last()
}

// Do runs fn with exclusive access to the wrapped clock, e.g. to move its
// source and read a timestamp as one step.
func (s *SyncClock[T, D]) Do(fn func(clock *Clock[T, D]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.clock)
}
