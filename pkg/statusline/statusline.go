// Package statusline models one line of the i3bar JSON protocol: an array of
// blocks, each a JSON object. Keys keep their input order when a line is
// written back out.
package statusline

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	// ErrMalformed is returned when a line is not exactly one JSON document.
	ErrMalformed = errors.New("malformed json")

	// ErrMissingKey is returned when a block has no such key.
	ErrMissingKey = errors.New("key not found")

	// ErrNotString is returned when a block value is not a JSON string.
	ErrNotString = errors.New("value is not a string")
)

// Line is one parsed status line. Elements that are not objects, and
// documents that are not arrays, are kept verbatim.
type Line struct {
	isArray  bool
	raw      json.RawMessage
	elements []element
}

type element struct {
	block *Block
	raw   json.RawMessage
}

// Parse parses one status line.
func Parse(line []byte) (*Line, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || !json.Valid(line) {
		return nil, ErrMalformed
	}

	if line[0] != '[' {
		return &Line{raw: append(json.RawMessage(nil), line...)}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(line, &items); err != nil {
		return nil, ErrMalformed
	}

	l := &Line{isArray: true, elements: make([]element, 0, len(items))}
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '{' {
			b := &Block{}
			if err := b.UnmarshalJSON(item); err != nil {
				return nil, ErrMalformed
			}
			l.elements = append(l.elements, element{block: b})
			continue
		}
		l.elements = append(l.elements, element{raw: item})
	}

	return l, nil
}

// Blocks returns the object elements of the line in order. It is empty when
// the line is not an array.
func (l *Line) Blocks() []*Block {
	var blocks []*Block
	for _, e := range l.elements {
		if e.block != nil {
			blocks = append(blocks, e.block)
		}
	}
	return blocks
}

// IsArray reports whether the line was a JSON array.
func (l *Line) IsArray() bool {
	return l.isArray
}

// MarshalJSON writes the line with ", " between items and ": " after keys.
func (l *Line) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}

	if !l.isArray {
		if err := writeCompact(buf, l.raw); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	buf.WriteByte('[')
	for i, e := range l.elements {
		if i > 0 {
			buf.WriteString(", ")
		}
		if e.block != nil {
			if err := e.block.writeTo(buf); err != nil {
				return nil, err
			}
			continue
		}
		if err := writeCompact(buf, e.raw); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

func writeCompact(buf *bytes.Buffer, raw json.RawMessage) error {
	return json.Compact(buf, raw)
}

// encodeString encodes s as a JSON string without escaping <, > and &, which
// i3bar markup uses.
func encodeString(s string) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
