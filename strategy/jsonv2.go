package strategy

import (
	"bytes"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/weiihann/fafjson/payload"
)

func newJSONv2Marshal() Serializer {
	return SerializerFunc(func(rec *payload.Record) ([]byte, error) {
		return jsonv2.Marshal(rec)
	})
}

type jsonv2Writer struct {
	buf bytes.Buffer
}

func newJSONv2MarshalWrite() Serializer {
	s := &jsonv2Writer{}
	s.buf.Grow(payload.Size)

	return s
}

func (s *jsonv2Writer) Serialize(rec *payload.Record) ([]byte, error) {
	s.buf.Reset()

	if err := jsonv2.MarshalWrite(&s.buf, rec); err != nil {
		return nil, err
	}

	return trimNewline(s.buf.Bytes()), nil
}

type jsonv2Fixed struct {
	buf FixedBuffer
}

func newJSONv2Fixed() Serializer {
	return &jsonv2Fixed{buf: NewFixedBuffer(payload.Size)}
}

func (s *jsonv2Fixed) Serialize(rec *payload.Record) ([]byte, error) {
	s.buf.Reset()

	if err := jsonv2.MarshalWrite(&s.buf, rec); err != nil {
		return nil, err
	}

	return s.buf.Bytes(), nil
}
