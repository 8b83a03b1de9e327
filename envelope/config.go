package envelope

import (
	"github.com/paularlott/hlc"
	"github.com/paularlott/hlc/codec"
	"github.com/paularlott/hlc/compression"
	"github.com/paularlott/hlc/encryption"
)

type Config struct {
	NodeID          string                 // NodeID is the UUID stamped on sealed envelopes, "" to generate a new one
	Codec           codec.Serializer       // Codec encodes payloads and the envelope itself, peers must agree on it
	Compressor      compression.Compressor // Compressor is optional, nil sends bodies uncompressed
	CompressMinSize int                    // CompressMinSize is the smallest encoded envelope worth compressing
	Cipher          encryption.Cipher      // Cipher is optional, when set EncryptionKey must suit it
	EncryptionKey   []byte                 // EncryptionKey for the Cipher
	MaxEnvelopeSize int                    // MaxEnvelopeSize rejects larger frames in Open before any decoding
	Logger          hlc.Logger             // Logger reports rejected envelopes
}

func DefaultConfig() *Config {
	return &Config{
		Codec:           codec.NewShamatonMsgpackCodec(),
		CompressMinSize: 256,
		MaxEnvelopeSize: 4194304, // 4MB
		Logger:          hlc.NewNullLogger(),
	}
}

// MergeDefault merges the default config with the given config to ensure all fields are set
func (c *Config) MergeDefault() *Config {
	defaultConfig := DefaultConfig()
	if c.Codec == nil {
		c.Codec = defaultConfig.Codec
	}
	if c.CompressMinSize == 0 {
		c.CompressMinSize = defaultConfig.CompressMinSize
	}
	if c.MaxEnvelopeSize == 0 {
		c.MaxEnvelopeSize = defaultConfig.MaxEnvelopeSize
	}
	if c.Logger == nil {
		c.Logger = defaultConfig.Logger
	}
	return c
}
