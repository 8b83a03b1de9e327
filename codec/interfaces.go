package codec

// Serializer decouples message encoding from the envelope. Every implementation
// encodes hlc.Timestamp as the ordered pair [time, count].
type Serializer interface {
	Name() string
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}
