//go:build !skip_codec_shamaton_msgpack

package codec

import shamaton "github.com/shamaton/msgpack/v2"

// ShamatonMsgpackCodec writes structs as msgpack arrays, keeping field order
// as the only contract between peers.
type ShamatonMsgpackCodec struct{}

func NewShamatonMsgpackCodec() *ShamatonMsgpackCodec {
	return &ShamatonMsgpackCodec{}
}

func (mp *ShamatonMsgpackCodec) Name() string {
	return "shamaton-msgpack"
}

func (mp *ShamatonMsgpackCodec) Marshal(v interface{}) ([]byte, error) {
	return shamaton.MarshalAsArray(v)
}

func (mp *ShamatonMsgpackCodec) Unmarshal(data []byte, v interface{}) error {
	return shamaton.UnmarshalAsArray(data, v)
}

var _ Serializer = (*ShamatonMsgpackCodec)(nil)
