//go:build !skip_codec_json

package codec

import "encoding/json"

type JsonCodec struct{}

func NewJsonCodec() *JsonCodec {
	return &JsonCodec{}
}

func (jc *JsonCodec) Name() string {
	return "json"
}

func (jc *JsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jc *JsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

var _ Serializer = (*JsonCodec)(nil)
