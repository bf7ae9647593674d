package payload

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mailru/easyjson/jwriter"
)

func TestExpectedSize(t *testing.T) {
	if Size != 26 {
		t.Fatalf("Size = %d, want 26", Size)
	}

	want := []byte{
		123, 34, 109, 101, 115, 115, 97, 103, 101, 34, 58, 34, 72, 101,
		108, 108, 111, 32, 87, 111, 114, 108, 100, 33, 34, 125,
	}
	if !bytes.Equal(ExpectedBytes(), want) {
		t.Errorf("ExpectedBytes() = %q, want %q", ExpectedBytes(), want)
	}
}

func TestExpectedBytesIsCopy(t *testing.T) {
	b := ExpectedBytes()
	b[0] = 'x'

	if got := ExpectedBytes(); got[0] != '{' {
		t.Errorf("ExpectedBytes() shares storage with caller: %q", got)
	}
}

func TestNewIsFresh(t *testing.T) {
	a, b := New(), New()
	if a == b {
		t.Fatal("New returned the same pointer twice")
	}

	if a.Message != Message {
		t.Errorf("message = %q, want %q", a.Message, Message)
	}
}

func TestStdlibMatchesExpected(t *testing.T) {
	out, err := json.Marshal(New())
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	if string(out) != ExpectedString {
		t.Errorf("json.Marshal = %s, want %s", out, ExpectedString)
	}
}

func TestMarshalEasyJSON(t *testing.T) {
	var w jwriter.Writer
	New().MarshalEasyJSON(&w)

	out, err := w.BuildBytes()
	if err != nil {
		t.Fatalf("BuildBytes failed: %v", err)
	}

	if string(out) != ExpectedString {
		t.Errorf("MarshalEasyJSON = %s, want %s", out, ExpectedString)
	}
}
