package hlc

import (
	"encoding/json"
	"fmt"
)

// Timestamp represents a Hybrid Logical Clock timestamp: a physical time
// reading plus a logical counter that breaks ties between equal readings.
//
// Serializers see a Timestamp as the ordered pair [time, count]; field order
// must not change or encoded timestamps from other implementations will not
// decode.
type Timestamp[T Comparer[T]] struct {
	_msgpack struct{} `msgpack:",as_array"`
	_struct  struct{} `codec:",toarray"`

	Time  T
	Count uint16
}

// Compare orders timestamps by time and then by count.
func (ts Timestamp[T]) Compare(other Timestamp[T]) int {
	if c := ts.Time.Compare(other.Time); c != 0 {
		return c
	}
	switch {
	case ts.Count < other.Count:
		return -1
	case ts.Count > other.Count:
		return 1
	default:
		return 0
	}
}

// Before returns true if ts is before other.
func (ts Timestamp[T]) Before(other Timestamp[T]) bool {
	return ts.Compare(other) < 0
}

// After returns true if ts is after other.
func (ts Timestamp[T]) After(other Timestamp[T]) bool {
	return ts.Compare(other) > 0
}

// Equal returns true if ts is equal to other.
func (ts Timestamp[T]) Equal(other Timestamp[T]) bool {
	return ts.Compare(other) == 0
}

func (ts Timestamp[T]) String() string {
	return fmt.Sprintf("%v+%d", ts.Time, ts.Count)
}

func (ts Timestamp[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{ts.Time, ts.Count})
}

func (ts *Timestamp[T]) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: expected [time, count], got %d elements", ErrInvalidEncoding, len(pair))
	}

	var decoded Timestamp[T]
	if err := json.Unmarshal(pair[0], &decoded.Time); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[1], &decoded.Count); err != nil {
		return err
	}
	*ts = decoded
	return nil
}
