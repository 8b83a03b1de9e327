//go:build !skip_codec_vmihailenco_msgpack

package codec

import vmihailenco "github.com/vmihailenco/msgpack/v5"

// VmihailencoMsgpackCodec honours the as_array tags on hlc.Timestamp and hlc.WallTime.
type VmihailencoMsgpackCodec struct{}

func NewVmihailencoMsgpackCodec() *VmihailencoMsgpackCodec {
	return &VmihailencoMsgpackCodec{}
}

func (mp *VmihailencoMsgpackCodec) Name() string {
	return "vmihailenco-msgpack"
}

func (mp *VmihailencoMsgpackCodec) Marshal(v interface{}) ([]byte, error) {
	return vmihailenco.Marshal(v)
}

func (mp *VmihailencoMsgpackCodec) Unmarshal(data []byte, v interface{}) error {
	return vmihailenco.Unmarshal(data, v)
}

var _ Serializer = (*VmihailencoMsgpackCodec)(nil)
