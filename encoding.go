package hlc

import (
	"encoding/binary"
	"fmt"
)

// BinaryTime is a Time with a fixed width, big-endian byte form. Comparing two
// encodings byte by byte must give the same result as Compare.
type BinaryTime[T any] interface {
	Comparer[T]

	// EncodedLen is the width of the byte form, it must not depend on the value.
	EncodedLen() int
	// AppendBytes appends the byte form to b.
	AppendBytes(b []byte) []byte
	// FromBytes decodes exactly EncodedLen bytes.
	FromBytes(b []byte) T
}

const (
	counterSize = 2

	// WallTimestampSize is the encoded size of a Timestamp[WallTime].
	WallTimestampSize = 6 + counterSize
)

// TimestampLen returns the encoded size of a Timestamp[T].
func TimestampLen[T BinaryTime[T]]() int {
	var zero T
	return zero.EncodedLen() + counterSize
}

// AppendTimestamp appends the time followed by the big-endian count, so the
// byte order of two encodings matches the timestamp order.
func AppendTimestamp[T BinaryTime[T]](dst []byte, ts Timestamp[T]) []byte {
	dst = ts.Time.AppendBytes(dst)
	return binary.BigEndian.AppendUint16(dst, ts.Count)
}

// ParseTimestamp decodes a timestamp written by AppendTimestamp.
func ParseTimestamp[T BinaryTime[T]](b []byte) (Timestamp[T], error) {
	var zero T
	n := zero.EncodedLen()
	if len(b) != n+counterSize {
		return Timestamp[T]{}, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidEncoding, n+counterSize, len(b))
	}
	return Timestamp[T]{
		Time:  zero.FromBytes(b[:n]),
		Count: binary.BigEndian.Uint16(b[n:]),
	}, nil
}

// EncodeWallTimestamp returns [seconds:4][fraction:2][count:2], all big-endian.
func EncodeWallTimestamp(ts Timestamp[WallTime]) [WallTimestampSize]byte {
	var out [WallTimestampSize]byte
	binary.BigEndian.PutUint32(out[0:4], ts.Time.Seconds)
	binary.BigEndian.PutUint16(out[4:6], ts.Time.Fraction)
	binary.BigEndian.PutUint16(out[6:8], ts.Count)
	return out
}

// DecodeWallTimestamp is the inverse of EncodeWallTimestamp.
func DecodeWallTimestamp(b [WallTimestampSize]byte) Timestamp[WallTime] {
	return Timestamp[WallTime]{
		Time: WallTime{
			Seconds:  binary.BigEndian.Uint32(b[0:4]),
			Fraction: binary.BigEndian.Uint16(b[4:6]),
		},
		Count: binary.BigEndian.Uint16(b[6:8]),
	}
}

// ParseWallTimestamp decodes an 8 byte slice.
func ParseWallTimestamp(b []byte) (Timestamp[WallTime], error) {
	if len(b) != WallTimestampSize {
		return Timestamp[WallTime]{}, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidEncoding, WallTimestampSize, len(b))
	}
	return DecodeWallTimestamp([WallTimestampSize]byte(b)), nil
}

func (w WallTime) EncodedLen() int { return 6 }

func (w WallTime) AppendBytes(b []byte) []byte {
	b = binary.BigEndian.AppendUint32(b, w.Seconds)
	return binary.BigEndian.AppendUint16(b, w.Fraction)
}

func (WallTime) FromBytes(b []byte) WallTime {
	return WallTime{Seconds: binary.BigEndian.Uint32(b[0:4]), Fraction: binary.BigEndian.Uint16(b[4:6])}
}

func (t ManualTime) EncodedLen() int { return 8 }

func (t ManualTime) AppendBytes(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(t))
}

func (ManualTime) FromBytes(b []byte) ManualTime {
	return ManualTime(binary.BigEndian.Uint64(b))
}

var (
	_ BinaryTime[WallTime]   = WallTime{}
	_ BinaryTime[ManualTime] = ManualTime(0)
)
