package hlc

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// halfTick rounded up to whole nanoseconds.
const halfTick = 7630 * time.Nanosecond

func TestWallTimeFromTimeAtEpoch(t *testing.T) {
	w, err := WallTimeFromTime(WallEpoch)
	require.NoError(t, err)
	assert.Equal(t, WallTime{}, w)
	assert.True(t, w.Time().Equal(WallEpoch))
}

func TestWallTimeEpochIs20200220(t *testing.T) {
	assert.Equal(t, time.Date(2020, time.February, 20, 0, 0, 0, 0, time.UTC), WallEpoch)
}

func TestWallTimeBeforeEpoch(t *testing.T) {
	_, err := WallTimeFromTime(WallEpoch.Add(-time.Nanosecond))
	assert.ErrorIs(t, err, ErrBeforeEpoch)

	_, err = WallTimeFromTime(time.Unix(0, 0))
	assert.ErrorIs(t, err, ErrBeforeEpoch)
}

func TestWallTimeAfterRange(t *testing.T) {
	_, err := WallTimeFromTime(time.Unix(WallEpochUnix+math.MaxUint32+1, 0))
	assert.ErrorIs(t, err, ErrTimeRange)

	// Rounding the last tick of the range up must not wrap around.
	_, err = WallTimeFromTime(time.Unix(WallEpochUnix+math.MaxUint32, 999_999_999))
	assert.ErrorIs(t, err, ErrTimeRange)

	w, err := WallTimeFromTime(time.Unix(WallEpochUnix+math.MaxUint32, 0))
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), w.Seconds)
}

func TestWallTimeFraction(t *testing.T) {
	w, err := WallTimeFromTime(WallEpoch.Add(1500 * time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, WallTime{Seconds: 1, Fraction: 1 << 15}, w)

	// One nanosecond short of a second rounds up into the next second.
	w, err = WallTimeFromTime(WallEpoch.Add(time.Second - time.Nanosecond))
	require.NoError(t, err)
	assert.Equal(t, WallTime{Seconds: 1, Fraction: 0}, w)
}

func TestWallTimeToTime(t *testing.T) {
	w := WallTime{Seconds: 10, Fraction: 1 << 14}
	assert.True(t, w.Time().Equal(WallEpoch.Add(10*time.Second+250*time.Millisecond)))

	last := WallTime{Seconds: 0, Fraction: math.MaxUint16}
	assert.Less(t, last.Time().Sub(WallEpoch), time.Second)
}

func TestWallTimeTicks(t *testing.T) {
	w := WallTime{Seconds: 3, Fraction: 7}
	assert.Equal(t, uint64(3<<16|7), w.Ticks())

	back, err := WallTimeFromTicks(w.Ticks())
	require.NoError(t, err)
	assert.Equal(t, w, back)

	_, err = WallTimeFromTicks(1 << 48)
	assert.ErrorIs(t, err, ErrTimeRange)
}

func TestWallTimeCompare(t *testing.T) {
	a := WallTime{Seconds: 1, Fraction: math.MaxUint16}
	b := WallTime{Seconds: 2, Fraction: 0}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestWallTimeSub(t *testing.T) {
	a := WallTime{Seconds: 1, Fraction: 0}
	b := WallTime{Seconds: 0, Fraction: 1 << 15}

	d, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, d)

	d, err = a.Sub(a)
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = b.Sub(a)
	assert.ErrorIs(t, err, ErrTimeRange)
}

func TestWallTimeSubFullRange(t *testing.T) {
	top := WallTime{Seconds: math.MaxUint32, Fraction: math.MaxUint16}

	d, err := top.Sub(WallTime{})
	require.NoError(t, err)
	assert.Equal(t, time.Duration(math.MaxUint32)*time.Second+999_984_741*time.Nanosecond, d)
}

func TestWallTimeJSON(t *testing.T) {
	w := WallTime{Seconds: 12, Fraction: 34}
	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `[12, 34]`, string(data))

	var back WallTime
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, w, back)

	assert.ErrorIs(t, json.Unmarshal([]byte(`[1]`), &back), ErrInvalidEncoding)
	assert.ErrorIs(t, json.Unmarshal([]byte(`[1, 65536]`), &back), ErrInvalidEncoding)
	assert.ErrorIs(t, json.Unmarshal([]byte(`[4294967296, 0]`), &back), ErrInvalidEncoding)
}

func TestWallTimeString(t *testing.T) {
	w := WallTime{Seconds: 1, Fraction: 1 << 15}
	assert.Equal(t, "2020-02-20T00:00:01.5Z", w.String())
}

func TestWallSourceBeforeEpochFailsClock(t *testing.T) {
	src := NewWallSourceFunc(func() time.Time { return time.Unix(0, 0) })

	_, err := NewClock[WallTime, time.Duration](src)
	assert.ErrorIs(t, err, ErrSourceRead)
	assert.ErrorIs(t, err, ErrBeforeEpoch)
}

func TestWallSourcePrecision(t *testing.T) {
	now := time.Now()
	src := NewWallSourceFunc(func() time.Time { return now })

	w, err := src.Now()
	require.NoError(t, err)
	diff := w.Time().Sub(now)
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqual(t, diff, halfTick)
}

func TestWallClockMaxDiff(t *testing.T) {
	now := WallEpoch.Add(24 * time.Hour)
	src := NewWallSourceFunc(func() time.Time { return now })
	clock, err := NewClock[WallTime, time.Duration](src)
	require.NoError(t, err)
	clock.WithMaxDiff(time.Second)

	ahead, err := WallTimeFromTime(now.Add(2 * time.Second))
	require.NoError(t, err)
	assert.ErrorIs(t, clock.Observe(Timestamp[WallTime]{Time: ahead}), ErrOffsetTooGreat)

	near, err := WallTimeFromTime(now.Add(500 * time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, clock.Observe(Timestamp[WallTime]{Time: near, Count: 3}))

	ts, err := clock.Now()
	require.NoError(t, err)
	assert.Equal(t, Timestamp[WallTime]{Time: near, Count: 4}, ts)
}
