package game

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"iemem/process"
	"iemem/remote"
)

// ResRefSize is the width of an inline resource reference field
const ResRefSize = 8

// decodeInline cuts at the first NUL and replaces invalid UTF-8.
func decodeInline(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

// ReadResRef decodes the fixed 8 byte resource reference stored at p.
// The conversion is lossy and never fails once the bytes are read.
func ReadResRef(ch process.Channel, p remote.Ptr[remote.Void]) (string, error) {
	raw, err := remote.Read(ch, remote.Cast[[ResRefSize]byte](p))
	if err != nil {
		return "", err
	}
	return decodeInline(raw[:]), nil
}

// ReadIndirectString follows the pointer stored at p and reads a NUL
// terminated string of at most capacity bytes.
//
// A null pointer, or no terminator within capacity, yields nil. Bytes that
// are not valid UTF-8 fail with *process.InvalidStringError.
func ReadIndirectString(ch process.Channel, p remote.Ptr[remote.Void], capacity int) (*string, error) {
	target, err := remote.ReadPtr[byte](ch, p)
	if err != nil {
		return nil, err
	}
	if target.IsNull() || capacity <= 0 {
		return nil, nil
	}

	raw, err := target.ReadBytes(ch, process.ProcessMemorySize(capacity))
	if err != nil {
		return nil, err
	}
	end := bytes.IndexByte(raw, 0)
	if end < 0 {
		return nil, nil
	}
	raw = raw[:end]
	if !utf8.Valid(raw) {
		return nil, &process.InvalidStringError{Msg: "string at " + target.String() + " is not UTF-8", Bytes: raw}
	}

	s := string(raw)
	return &s, nil
}
