package compression

import (
	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor trades CPU for a better ratio than snappy on larger payloads.
// The encoder and decoder are safe for concurrent EncodeAll/DecodeAll calls.
type ZstdCompressor struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewZstdCompressor() (*ZstdCompressor, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		encoder.Close()
		return nil, err
	}
	return &ZstdCompressor{encoder: encoder, decoder: decoder}, nil
}

func (z *ZstdCompressor) Name() string {
	return "zstd"
}

func (z *ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return z.encoder.EncodeAll(data, nil), nil
}

func (z *ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	return z.decoder.DecodeAll(data, nil)
}

// Close releases the encoder and decoder.
func (z *ZstdCompressor) Close() error {
	z.decoder.Close()
	return z.encoder.Close()
}

var _ Compressor = (*ZstdCompressor)(nil)
