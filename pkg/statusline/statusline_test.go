package statusline

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "empty", line: ""},
		{name: "spaces", line: "   "},
		{name: "not json", line: "not json"},
		{name: "i3bar continuation", line: `,[{"name":"a","full_text":"x"}]`},
		{name: "opening bracket only", line: "["},
		{name: "trailing data", line: `[] []`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.line))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Parse(%q) error = %v, want ErrMalformed", tt.line, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "single block",
			line: `[{"name":"other","full_text":"x"}]`,
			want: `[{"name": "other", "full_text": "x"}]`,
		},
		{
			name: "key order kept",
			line: `[{"full_text":"x","name":"a","color":"#FFFFFF","urgent":false,"min_width":10}]`,
			want: `[{"full_text": "x", "name": "a", "color": "#FFFFFF", "urgent": false, "min_width": 10}]`,
		},
		{
			name: "empty array",
			line: `[]`,
			want: `[]`,
		},
		{
			name: "non object elements kept",
			line: `[1, "two", {"name":"a"}, null]`,
			want: `[1, "two", {"name": "a"}, null]`,
		},
		{
			name: "nested values compacted",
			line: `[{"name":"a","extra":{"k": [1, 2]}}]`,
			want: `[{"name": "a", "extra": {"k":[1,2]}}]`,
		},
		{
			name: "header passes through",
			line: `{"version": 1}`,
			want: `{"version":1}`,
		},
		{
			name: "markup not escaped",
			line: `[{"name":"a","full_text":"<span>x</span>"}]`,
			want: `[{"name": "a", "full_text": "<span>x</span>"}]`,
		},
		{
			name: "duplicate key keeps first position",
			line: `[{"name":"a","full_text":"x","name":"b"}]`,
			want: `[{"name": "b", "full_text": "x"}]`,
		},
		{
			name: "surrounding whitespace",
			line: "  [{\"name\":\"a\"}]\n",
			want: `[{"name": "a"}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Parse([]byte(tt.line))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got, err := l.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	l, err := Parse([]byte(`[{"name":"a"}, 3, {"name":"b"}]`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	var names []string
	for _, b := range l.Blocks() {
		names = append(names, b.Name())
	}
	if !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Errorf("block names = %v", names)
	}

	header, err := Parse([]byte(`{"version":1}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if header.IsArray() || len(header.Blocks()) != 0 {
		t.Errorf("non-array line should have no blocks")
	}
}

func TestBlockGetString(t *testing.T) {
	b := &Block{}
	if err := b.UnmarshalJSON([]byte(`{"name":"battery 0","percentage":"73%","min_width":3,"color":null}`)); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}

	if got, err := b.GetString("percentage"); err != nil || got != "73%" {
		t.Errorf("GetString(percentage) = %q, %v", got, err)
	}
	if _, err := b.GetString("missing"); !errors.Is(err, ErrMissingKey) {
		t.Errorf("GetString(missing) error = %v, want ErrMissingKey", err)
	}
	if _, err := b.GetString("min_width"); !errors.Is(err, ErrNotString) {
		t.Errorf("GetString(min_width) error = %v, want ErrNotString", err)
	}
	if _, err := b.GetString("color"); !errors.Is(err, ErrNotString) {
		t.Errorf("GetString(color) error = %v, want ErrNotString", err)
	}
}

func TestBlockSetString(t *testing.T) {
	b := NewBlock()
	if err := b.SetString("name", "a"); err != nil {
		t.Fatal(err)
	}
	if err := b.SetString("full_text", "x"); err != nil {
		t.Fatal(err)
	}
	if err := b.SetString("name", "b"); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(b.Keys(), []string{"name", "full_text"}) {
		t.Errorf("Keys() = %v", b.Keys())
	}
	got, err := b.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"name": "b", "full_text": "x"}`; string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
	if b.Name() != "b" || !b.Has("full_text") || b.Has("color") {
		t.Errorf("unexpected block state %s", got)
	}
}
