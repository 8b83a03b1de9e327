// Package envelope stamps application messages with Hybrid Logical Clock
// timestamps and folds the timestamps of received messages back into the local
// clock. It performs no I/O: sealed frames are plain bytes that callers carry
// over whatever transport they already use.
//
// Frame layout: [flags:1][body]. The body is the codec encoded Envelope,
// optionally compressed and then optionally encrypted with the flags byte as
// associated data.
package envelope

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/paularlott/hlc"
	"github.com/paularlott/hlc/encryption"
)

const (
	flagCompressed byte = 1 << iota
	flagEncrypted

	knownFlags = flagCompressed | flagEncrypted
)

var (
	ErrMalformed    = errors.New("malformed envelope")
	ErrTooLarge     = errors.New("envelope too large")
	ErrNotEncrypted = errors.New("envelope is not encrypted")
)

// Stamper is the part of a clock the envelope needs, satisfied by *hlc.Clock
// and *hlc.SyncClock.
type Stamper[T hlc.Comparer[T]] interface {
	Now() (hlc.Timestamp[T], error)
	Observe(remote hlc.Timestamp[T]) error
}

// Envelope is the decoded content of a frame.
type Envelope[T hlc.Comparer[T]] struct {
	SenderID  uuid.UUID        `msgpack:"si" json:"si"`
	Timestamp hlc.Timestamp[T] `msgpack:"ts" json:"ts"`
	Payload   []byte           `msgpack:"p" json:"p"`
}

// Sealer seals outgoing messages and opens incoming ones against one clock.
// It is as safe for concurrent use as the Stamper it wraps.
type Sealer[T hlc.Comparer[T]] struct {
	clock  Stamper[T]
	config *Config
	nodeID uuid.UUID
}

func NewSealer[T hlc.Comparer[T]](clock Stamper[T], config *Config) (*Sealer[T], error) {
	if clock == nil {
		return nil, fmt.Errorf("missing clock")
	}
	if config == nil {
		config = DefaultConfig()
	}
	config.MergeDefault()

	if config.Cipher != nil && !encryption.ValidKey(config.Cipher, config.EncryptionKey) {
		return nil, fmt.Errorf("invalid encryption key length for %s: %d bytes", config.Cipher.Name(), len(config.EncryptionKey))
	}
	if config.Cipher == nil && len(config.EncryptionKey) > 0 {
		return nil, fmt.Errorf("encryption key given without a cipher")
	}

	var u uuid.UUID
	var err error
	if config.NodeID != "" {
		u, err = uuid.Parse(config.NodeID)
		if err != nil {
			return nil, fmt.Errorf("invalid Node ID: %v", err)
		}
	} else {
		u, err = uuid.NewV7()
		if err != nil {
			u = uuid.New()
		}
	}

	return &Sealer[T]{
		clock:  clock,
		config: config,
		nodeID: u,
	}, nil
}

// NodeID is the sender ID written into sealed envelopes.
func (s *Sealer[T]) NodeID() uuid.UUID {
	return s.nodeID
}

// Seal encodes v, stamps it with a new timestamp from the clock and returns
// the frame together with that timestamp.
func (s *Sealer[T]) Seal(v interface{}) ([]byte, hlc.Timestamp[T], error) {
	payload, err := s.config.Codec.Marshal(v)
	if err != nil {
		return nil, hlc.Timestamp[T]{}, fmt.Errorf("failed to encode payload: %w", err)
	}

	ts, err := s.clock.Now()
	if err != nil {
		return nil, hlc.Timestamp[T]{}, err
	}

	frame, err := s.encode(&Envelope[T]{
		SenderID:  s.nodeID,
		Timestamp: ts,
		Payload:   payload,
	})
	if err != nil {
		return nil, hlc.Timestamp[T]{}, err
	}
	return frame, ts, nil
}

// Open decodes a frame, decodes the payload into v when v is not nil and then
// observes the envelope timestamp. A timestamp too far ahead of the local clock
// is reported as hlc.ErrOffsetTooGreat and leaves the clock unchanged.
func (s *Sealer[T]) Open(data []byte, v interface{}) (*Envelope[T], error) {
	env, err := s.decode(data)
	if err != nil {
		s.config.Logger.Err(err).Debugf("failed to decode envelope")
		return nil, err
	}

	if v != nil {
		if err := s.config.Codec.Unmarshal(env.Payload, v); err != nil {
			return nil, fmt.Errorf("failed to decode payload: %w", err)
		}
	}

	if err := s.clock.Observe(env.Timestamp); err != nil {
		s.config.Logger.
			Field("sender", env.SenderID.String()).
			Field("timestamp", env.Timestamp.String()).
			Err(err).
			Warnf("rejecting envelope")
		return nil, err
	}

	return env, nil
}

func (s *Sealer[T]) encode(env *Envelope[T]) ([]byte, error) {
	body, err := s.config.Codec.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}

	var flags byte
	if s.config.Compressor != nil && len(body) >= s.config.CompressMinSize {
		packed, err := s.config.Compressor.Compress(body)
		if err != nil {
			return nil, fmt.Errorf("failed to compress envelope: %w", err)
		}
		if len(packed) < len(body) {
			body = packed
			flags |= flagCompressed
		}
	}

	if s.config.Cipher != nil {
		flags |= flagEncrypted
		body, err = s.config.Cipher.Encrypt(s.config.EncryptionKey, body, []byte{flags})
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt envelope: %w", err)
		}
	}

	frame := make([]byte, 1+len(body))
	frame[0] = flags
	copy(frame[1:], body)
	return frame, nil
}

func (s *Sealer[T]) decode(data []byte) (*Envelope[T], error) {
	if len(data) > s.config.MaxEnvelopeSize {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrTooLarge, len(data), s.config.MaxEnvelopeSize)
	}
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformed, len(data))
	}

	flags, body := data[0], data[1:]
	if flags&^knownFlags != 0 {
		return nil, fmt.Errorf("%w: unknown flags %#x", ErrMalformed, flags)
	}

	var err error
	if flags&flagEncrypted != 0 {
		if s.config.Cipher == nil {
			return nil, fmt.Errorf("%w: encrypted but no cipher configured", ErrMalformed)
		}
		body, err = s.config.Cipher.Decrypt(s.config.EncryptionKey, body, []byte{flags})
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt envelope: %w", err)
		}
	} else if s.config.Cipher != nil {
		return nil, ErrNotEncrypted
	}

	if flags&flagCompressed != 0 {
		if s.config.Compressor == nil {
			return nil, fmt.Errorf("%w: compressed but no compressor configured", ErrMalformed)
		}
		body, err = s.config.Compressor.Decompress(body)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress envelope: %w", err)
		}
	}

	env := &Envelope[T]{}
	if err := s.config.Codec.Unmarshal(body, env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return env, nil
}
