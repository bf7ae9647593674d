// Package payload defines the fixed record every strategy serializes and
// the canonical bytes each serialization must reproduce.
package payload

import (
	"github.com/mailru/easyjson/jwriter"
)

// Message is the constant value carried by every Record.
const Message = "Hello World!"

// ExpectedString is the canonical JSON encoding of a Record.
const ExpectedString = `{"message":"Hello World!"}`

// Size is the length in bytes of ExpectedString.
const Size = len(ExpectedString)

var expected = []byte(ExpectedString)

// Record is the single payload being serialized.
type Record struct {
	Message string `json:"message"`
}

// New returns a fresh Record. Callers build one per iteration so no
// serializer is ever handed a warmed-up value.
func New() *Record {
	return &Record{Message: Message}
}

// ExpectedBytes returns a copy of the canonical encoding.
func ExpectedBytes() []byte {
	out := make([]byte, Size)
	copy(out, expected)

	return out
}

// MarshalEasyJSON writes r the way easyjson generated code does.
func (r Record) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"message":`)
	w.String(r.Message)
	w.RawByte('}')
}
