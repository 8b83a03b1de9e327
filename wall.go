package hlc

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const (
	// TicksPerSecond is the resolution of WallTime, one tick is 2^-16 seconds.
	TicksPerSecond = 1 << 16

	// WallEpochUnix is 2020-02-20T00:00:00Z in Unix seconds, the zero point of WallTime.
	WallEpochUnix = 1582156800

	nanosPerSecond = uint64(time.Second)
	maxWallTicks   = uint64(math.MaxUint32)<<16 | (TicksPerSecond - 1)
)

// WallEpoch is the instant represented by the zero WallTime.
var WallEpoch = time.Unix(WallEpochUnix, 0).UTC()

// WallTime is a fixed point wall clock reading: whole seconds since WallEpoch
// and a fraction of a second in 1/65536 ticks. Ordered as a 48 bit number.
type WallTime struct {
	_msgpack struct{} `msgpack:",as_array"`
	_struct  struct{} `codec:",toarray"`

	Seconds  uint32
	Fraction uint16
}

// WallTimeFromTicks builds a WallTime from a tick count since WallEpoch.
func WallTimeFromTicks(ticks uint64) (WallTime, error) {
	if ticks > maxWallTicks {
		return WallTime{}, fmt.Errorf("%w: %d ticks", ErrTimeRange, ticks)
	}
	return WallTime{Seconds: uint32(ticks >> 16), Fraction: uint16(ticks & (TicksPerSecond - 1))}, nil
}

// WallTimeFromTime converts t, rounding the sub-second part to the nearest tick.
func WallTimeFromTime(t time.Time) (WallTime, error) {
	secs := t.Unix() - WallEpochUnix
	if secs < 0 {
		return WallTime{}, fmt.Errorf("%w: %s", ErrBeforeEpoch, t.UTC().Format(time.RFC3339Nano))
	}
	if uint64(secs) > math.MaxUint32 {
		return WallTime{}, fmt.Errorf("%w: %s", ErrTimeRange, t.UTC().Format(time.RFC3339Nano))
	}

	// Rounding may produce a full second, the tick sum carries it into Seconds.
	frac := (uint64(t.Nanosecond())<<16 + nanosPerSecond/2) / nanosPerSecond
	return WallTimeFromTicks(uint64(secs)<<16 + frac)
}

// Ticks returns the number of ticks since WallEpoch.
func (w WallTime) Ticks() uint64 {
	return uint64(w.Seconds)<<16 | uint64(w.Fraction)
}

// Time converts w back to a time.Time in UTC.
func (w WallTime) Time() time.Time {
	nanos := ticksToNanos(uint64(w.Fraction))
	return time.Unix(WallEpochUnix+int64(w.Seconds), int64(nanos)).UTC()
}

func (w WallTime) Compare(other WallTime) int {
	a, b := w.Ticks(), other.Ticks()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Sub returns the duration from other to w.
func (w WallTime) Sub(other WallTime) (time.Duration, error) {
	a, b := w.Ticks(), other.Ticks()
	if b > a {
		return 0, fmt.Errorf("%w: %s - %s", ErrTimeRange, w, other)
	}
	d := a - b
	// d>>16 fits in 32 bits so the seconds product cannot overflow a Duration.
	return time.Duration(d>>16)*time.Second + time.Duration(ticksToNanos(d&(TicksPerSecond-1))), nil
}

func (w WallTime) String() string {
	return w.Time().Format(time.RFC3339Nano)
}

func (w WallTime) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint64{uint64(w.Seconds), uint64(w.Fraction)})
}

func (w *WallTime) UnmarshalJSON(data []byte) error {
	var pair []uint64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: expected [seconds, fraction], got %d elements", ErrInvalidEncoding, len(pair))
	}
	if pair[0] > math.MaxUint32 || pair[1] >= TicksPerSecond {
		return fmt.Errorf("%w: wall time [%d, %d]", ErrInvalidEncoding, pair[0], pair[1])
	}
	*w = WallTime{Seconds: uint32(pair[0]), Fraction: uint16(pair[1])}
	return nil
}

// ticksToNanos converts a sub-second tick count to nanoseconds.
func ticksToNanos(ticks uint64) uint64 {
	nanos := (ticks*nanosPerSecond + TicksPerSecond/2) >> 16
	if nanos >= nanosPerSecond {
		panic(fmt.Sprintf("hlc: internal arithmetic error, %d ticks gave %dns", ticks, nanos))
	}
	return nanos
}

// WallSource is a Source reading the system wall clock.
type WallSource struct {
	clock func() time.Time
}

func NewWallSource() *WallSource {
	return &WallSource{clock: time.Now}
}

// NewWallSourceFunc creates a WallSource that reads time from fn.
func NewWallSourceFunc(fn func() time.Time) *WallSource {
	return &WallSource{clock: fn}
}

// Now fails with ErrBeforeEpoch if the system clock is set before WallEpoch.
func (s *WallSource) Now() (WallTime, error) {
	return WallTimeFromTime(s.clock())
}

// NewWallClock creates a Clock driven by the system wall clock.
func NewWallClock() (*Clock[WallTime, time.Duration], error) {
	return NewClock[WallTime, time.Duration](NewWallSource())
}

var _ Source[WallTime] = (*WallSource)(nil)
var _ Time[WallTime, time.Duration] = WallTime{}
