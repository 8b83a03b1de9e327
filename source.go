// Package hlc implements a Hybrid Logical Clock (HLC) for generating timestamps
// that track wall-clock time while still ordering causally related events across
// processes. A Timestamp pairs a physical time reading with a 16 bit logical
// counter. The Clock type is generic over the physical time source so the same
// engine is driven by the system wall clock in production and by a ManualClock
// in tests and simulations.
//
// A Clock is a plain value with no internal locking; use SyncClock when a clock
// is shared between goroutines. Clocks exchange knowledge only through the
// Timestamp values callers pass to Observe.
package hlc

import "cmp"

// Comparer is implemented by types with a total order.
type Comparer[T any] interface {
	// Compare returns -1 if the receiver sorts before other, +1 if after and 0 if equal.
	Compare(other T) int
}

// Time is a physical time reading produced by a Source. D is the type of the
// difference between two readings and is used only to check drift bounds.
type Time[T any, D cmp.Ordered] interface {
	Comparer[T]

	// Sub returns the receiver minus other. It fails with ErrTimeRange if other
	// is after the receiver, it never wraps.
	Sub(other T) (D, error)
}

// Source supplies physical time readings to a Clock. Readings are expected to
// be roughly monotonic but the Clock tolerates a source moving backwards.
type Source[T any] interface {
	Now() (T, error)
}
