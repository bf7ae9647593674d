// Package strategy holds the registry of JSON serialization code paths
// under measurement.
package strategy

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/weiihann/fafjson/payload"
)

// ErrUnknown is returned when a requested strategy is not registered.
var ErrUnknown = errors.New("unknown strategy")

// BufferPolicy describes how a strategy obtains its output buffer.
type BufferPolicy int

const (
	// Alloc strategies return a freshly allocated slice every call.
	Alloc BufferPolicy = iota
	// Reuse strategies truncate and refill one growable buffer.
	Reuse
	// Fixed strategies write into a caller-provided buffer of static
	// capacity and fail if the output does not fit.
	Fixed
)

func (p BufferPolicy) String() string {
	switch p {
	case Alloc:
		return "alloc"
	case Reuse:
		return "reuse"
	case Fixed:
		return "fixed"
	default:
		return fmt.Sprintf("BufferPolicy(%d)", int(p))
	}
}

// Serializer encodes a record. The returned slice is only valid until the
// next call.
type Serializer interface {
	Serialize(rec *payload.Record) ([]byte, error)
}

// SerializerFunc adapts a function to Serializer.
type SerializerFunc func(rec *payload.Record) ([]byte, error)

// Serialize calls f(rec).
func (f SerializerFunc) Serialize(rec *payload.Record) ([]byte, error) {
	return f(rec)
}

// Strategy describes one serialization code path.
type Strategy struct {
	Name     string
	Buffer   BufferPolicy
	Expected []byte
	// New returns a serializer owning its own buffers. It is called once
	// per run so no state leaks between runs.
	New func() Serializer
}

// All returns every registered strategy in report order.
func All() []Strategy {
	return []Strategy{
		{Name: "encoding/json Marshal", Buffer: Alloc, New: newStdlibMarshal},
		{Name: "encoding/json Encoder", Buffer: Reuse, New: newStdlibEncoder},
		{Name: "jsoniter Marshal", Buffer: Alloc, New: newJsoniterMarshal},
		{Name: "jsoniter Stream", Buffer: Reuse, New: newJsoniterStream},
		{Name: "go-json Marshal", Buffer: Alloc, New: newGoJSONMarshal},
		{Name: "go-json Encoder", Buffer: Reuse, New: newGoJSONEncoder},
		{Name: "sonic Marshal", Buffer: Alloc, New: newSonicMarshal},
		{Name: "sonic EncodeInto", Buffer: Reuse, New: newSonicEncodeInto},
		{Name: "json/v2 Marshal", Buffer: Alloc, New: newJSONv2Marshal},
		{Name: "json/v2 MarshalWrite", Buffer: Reuse, New: newJSONv2MarshalWrite},
		{Name: "json/v2 fixed [26]byte", Buffer: Fixed, New: newJSONv2Fixed},
		{Name: "easyjson Marshal", Buffer: Alloc, New: newEasyJSONMarshal},
	}
}

// Names returns the labels of all registered strategies in order.
func Names() []string {
	all := All()
	names := make([]string, 0, len(all))

	for _, s := range all {
		names = append(names, s.Name)
	}

	return names
}

// Select returns the registered strategies whose names appear in names,
// keeping registry order. An empty names selects everything.
func Select(names []string) ([]Strategy, error) {
	all := All()
	if len(names) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	selected := make([]Strategy, 0, len(names))

	for _, s := range all {
		if want[s.Name] {
			selected = append(selected, s)
			delete(want, s.Name)
		}
	}

	for _, n := range names {
		if want[n] {
			return nil, fmt.Errorf("%w %q", ErrUnknown, n)
		}
	}

	return selected, nil
}

// ExpectedOutput returns the bytes s must produce on every call.
func (s Strategy) ExpectedOutput() []byte {
	if s.Expected != nil {
		return s.Expected
	}

	return payload.ExpectedBytes()
}

// trimNewline drops the newline stream encoders append after each value.
func trimNewline(b []byte) []byte {
	return bytes.TrimSuffix(b, []byte{'\n'})
}
