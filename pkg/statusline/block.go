package statusline

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Block is one status bar segment. It behaves like an ordered JSON object.
type Block struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewBlock returns an empty block.
func NewBlock() *Block {
	return &Block{values: map[string]json.RawMessage{}}
}

// UnmarshalJSON decodes a JSON object, remembering key order. A repeated key
// keeps its first position and takes the last value.
func (b *Block) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	b.keys = nil
	b.values = map[string]json.RawMessage{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		b.set(key, value)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}

// MarshalJSON writes the block with its keys in order.
func (b *Block) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := b.writeTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *Block) writeTo(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, key := range b.keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		k, err := encodeString(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteString(": ")
		if err := writeCompact(buf, b.values[key]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func (b *Block) set(key string, value json.RawMessage) {
	if b.values == nil {
		b.values = map[string]json.RawMessage{}
	}
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
}

// Keys returns the keys of the block in order.
func (b *Block) Keys() []string {
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	return keys
}

// Has reports whether key is present.
func (b *Block) Has(key string) bool {
	_, ok := b.values[key]
	return ok
}

// GetString returns the string value of key.
func (b *Block) GetString(key string) (string, error) {
	raw, ok := b.values[key]
	if !ok {
		return "", fmt.Errorf("%q: %w", key, ErrMissingKey)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", fmt.Errorf("%q: %w", key, ErrNotString)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%q: %w", key, ErrNotString)
	}

	return s, nil
}

// SetString sets key to a string value, appending the key if it is new.
func (b *Block) SetString(key, value string) error {
	raw, err := encodeString(value)
	if err != nil {
		return err
	}
	b.set(key, raw)
	return nil
}

// Name returns the block name, or "" if it has none.
func (b *Block) Name() string {
	name, err := b.GetString("name")
	if err != nil {
		return ""
	}
	return name
}
