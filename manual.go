package hlc

import (
	"fmt"
	"strconv"
)

// ManualTime is the time domain of a ManualClock: a bare unsigned counter.
type ManualTime uint64

func (t ManualTime) Compare(other ManualTime) int {
	switch {
	case t < other:
		return -1
	case t > other:
		return 1
	default:
		return 0
	}
}

func (t ManualTime) Sub(other ManualTime) (uint64, error) {
	if other > t {
		return 0, fmt.Errorf("%w: %d - %d", ErrTimeRange, t, other)
	}
	return uint64(t - other), nil
}

func (t ManualTime) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// ManualClock is a Source whose reading only changes when SetTime is called.
type ManualClock struct {
	now ManualTime
}

func NewManualClock(initial ManualTime) *ManualClock {
	return &ManualClock{now: initial}
}

// SetTime replaces the current reading, moving backwards is allowed.
func (m *ManualClock) SetTime(t ManualTime) {
	m.now = t
}

// Time returns the current reading.
func (m *ManualClock) Time() ManualTime {
	return m.now
}

// Now never fails.
func (m *ManualClock) Now() (ManualTime, error) {
	return m.now, nil
}

// NewManual creates a Clock driven by a ManualClock starting at initial.
func NewManual(initial ManualTime) (*Clock[ManualTime, uint64], error) {
	return NewClock[ManualTime, uint64](NewManualClock(initial))
}

var _ Source[ManualTime] = (*ManualClock)(nil)
var _ Time[ManualTime, uint64] = ManualTime(0)
