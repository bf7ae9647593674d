package strategy

import (
	"bytes"

	gojson "github.com/goccy/go-json"
	"github.com/weiihann/fafjson/payload"
)

func newGoJSONMarshal() Serializer {
	return SerializerFunc(func(rec *payload.Record) ([]byte, error) {
		return gojson.Marshal(rec)
	})
}

type goJSONEncoder struct {
	buf bytes.Buffer
	enc *gojson.Encoder
}

func newGoJSONEncoder() Serializer {
	s := &goJSONEncoder{}
	s.buf.Grow(payload.Size + 1)
	s.enc = gojson.NewEncoder(&s.buf)

	return s
}

func (s *goJSONEncoder) Serialize(rec *payload.Record) ([]byte, error) {
	s.buf.Reset()

	if err := s.enc.Encode(rec); err != nil {
		return nil, err
	}

	return trimNewline(s.buf.Bytes()), nil
}
