package hlc

import "errors"

var (
	// ErrSourceRead wraps any failure returned by a Source.
	ErrSourceRead = errors.New("clock source read failed")

	// ErrBeforeEpoch is returned when a wall clock reading predates WallEpoch.
	ErrBeforeEpoch = errors.New("time is before the clock epoch")

	// ErrOffsetTooGreat is returned by Observe when a remote timestamp is further
	// ahead of the local physical time than the configured bound allows.
	ErrOffsetTooGreat = errors.New("remote timestamp offset too great")

	// ErrClockOverflow is returned by Now when the logical counter is exhausted.
	ErrClockOverflow = errors.New("logical counter overflow")

	// ErrTimeRange is returned when subtracting a later time from an earlier one
	// or when a value does not fit the time representation.
	ErrTimeRange = errors.New("time value out of range")

	// ErrInvalidEncoding is returned when decoding malformed timestamp bytes.
	ErrInvalidEncoding = errors.New("invalid timestamp encoding")
)
