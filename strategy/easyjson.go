package strategy

import (
	"github.com/mailru/easyjson"
	"github.com/weiihann/fafjson/payload"
)

func newEasyJSONMarshal() Serializer {
	return SerializerFunc(func(rec *payload.Record) ([]byte, error) {
		return easyjson.Marshal(rec)
	})
}
