package strategy

import (
	"bytes"
	"encoding/json"

	"github.com/weiihann/fafjson/payload"
)

func newStdlibMarshal() Serializer {
	return SerializerFunc(func(rec *payload.Record) ([]byte, error) {
		return json.Marshal(rec)
	})
}

type stdlibEncoder struct {
	buf bytes.Buffer
	enc *json.Encoder
}

func newStdlibEncoder() Serializer {
	s := &stdlibEncoder{}
	s.buf.Grow(payload.Size + 1)
	s.enc = json.NewEncoder(&s.buf)

	return s
}

func (s *stdlibEncoder) Serialize(rec *payload.Record) ([]byte, error) {
	s.buf.Reset()

	if err := s.enc.Encode(rec); err != nil {
		return nil, err
	}

	return trimNewline(s.buf.Bytes()), nil
}
