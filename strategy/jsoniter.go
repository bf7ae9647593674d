package strategy

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/weiihann/fafjson/payload"
)

var jsoniterAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func newJsoniterMarshal() Serializer {
	return SerializerFunc(func(rec *payload.Record) ([]byte, error) {
		return jsoniterAPI.Marshal(rec)
	})
}

type jsoniterStream struct {
	stream *jsoniter.Stream
}

func newJsoniterStream() Serializer {
	return &jsoniterStream{
		stream: jsoniter.NewStream(jsoniterAPI, nil, payload.Size),
	}
}

// Serialize resets the stream, which truncates its buffer in place.
func (s *jsoniterStream) Serialize(rec *payload.Record) ([]byte, error) {
	s.stream.Reset(nil)
	s.stream.WriteVal(rec)

	if s.stream.Error != nil {
		return nil, s.stream.Error
	}

	return s.stream.Buffer(), nil
}
