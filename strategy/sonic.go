package strategy

import (
	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/encoder"
	"github.com/weiihann/fafjson/payload"
)

func newSonicMarshal() Serializer {
	return SerializerFunc(func(rec *payload.Record) ([]byte, error) {
		return sonic.Marshal(rec)
	})
}

type sonicEncodeInto struct {
	buf []byte
}

func newSonicEncodeInto() Serializer {
	return &sonicEncodeInto{buf: make([]byte, 0, payload.Size)}
}

// Serialize appends into the truncated buffer, keeping its capacity.
func (s *sonicEncodeInto) Serialize(rec *payload.Record) ([]byte, error) {
	s.buf = s.buf[:0]

	if err := encoder.EncodeInto(&s.buf, rec, 0); err != nil {
		return nil, err
	}

	return s.buf, nil
}
