package codec

import (
	"testing"

	"github.com/paularlott/hlc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCodecs() []Serializer {
	return []Serializer{
		NewJsonCodec(),
		NewShamatonMsgpackCodec(),
		NewVmihailencoMsgpackCodec(),
		NewHashicorpMsgpackCodec(),
	}
}

type stamped struct {
	Name string
	At   hlc.Timestamp[hlc.WallTime]
}

func TestCodecNames(t *testing.T) {
	names := map[string]bool{}
	for _, c := range allCodecs() {
		assert.NotEmpty(t, c.Name())
		names[c.Name()] = true
	}
	assert.Len(t, names, len(allCodecs()))
}

func TestCodec_WallTimestampRoundTrip(t *testing.T) {
	in := hlc.Timestamp[hlc.WallTime]{
		Time:  hlc.WallTime{Seconds: 0xdeadbeef, Fraction: 0xcafe},
		Count: 0xffff,
	}

	for _, c := range allCodecs() {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out hlc.Timestamp[hlc.WallTime]
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestCodec_ManualTimestampRoundTrip(t *testing.T) {
	in := hlc.Timestamp[hlc.ManualTime]{Time: 1 << 60, Count: 12}

	for _, c := range allCodecs() {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out hlc.Timestamp[hlc.ManualTime]
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestCodec_TimestampIsOrderedPair(t *testing.T) {
	in := hlc.Timestamp[hlc.ManualTime]{Time: 99, Count: 3}

	for _, c := range allCodecs() {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var pair []interface{}
			require.NoError(t, c.Unmarshal(data, &pair))
			require.Len(t, pair, 2)
			assert.EqualValues(t, 99, pair[0])
			assert.EqualValues(t, 3, pair[1])
		})
	}
}

func TestCodec_NestedTimestamp(t *testing.T) {
	in := stamped{
		Name: "event",
		At:   hlc.Timestamp[hlc.WallTime]{Time: hlc.WallTime{Seconds: 5, Fraction: 6}, Count: 7},
	}

	for _, c := range allCodecs() {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out stamped
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestJsonCodec_RoundTrip(t *testing.T) {
	c := NewJsonCodec()
	in := map[string]interface{}{"a": 1, "b": "x"}
	b, err := c.Marshal(in)
	require.NoError(t, err)

	out := map[string]interface{}{}
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Len(t, out, 2)
	assert.Equal(t, "x", out["b"])
}
