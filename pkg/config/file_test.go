package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charlie0129/batticon/pkg/annotate"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "batticon.json")
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewFile(t *testing.T) {
	tests := []struct {
		name        string
		path        func(t *testing.T) string
		target      string
		debugOutput bool
		onInvalid   string
		wantErr     bool
	}{
		{
			name:      "no path",
			path:      func(*testing.T) string { return "" },
			target:    "battery 0",
			onInvalid: "skip",
		},
		{
			name:      "missing file",
			path:      func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
			target:    "battery 0",
			onInvalid: "skip",
		},
		{
			name:      "empty file",
			path:      func(t *testing.T) string { return writeConfig(t, "  \n") },
			target:    "battery 0",
			onInvalid: "skip",
		},
		{
			name:        "partial file",
			path:        func(t *testing.T) string { return writeConfig(t, `{"debugOutput": true}`) },
			target:      "battery 0",
			debugOutput: true,
			onInvalid:   "skip",
		},
		{
			name:      "full file",
			path:      func(t *testing.T) string { return writeConfig(t, `{"target":"battery all","debugOutput":false,"onInvalid":"drop"}`) },
			target:    "battery all",
			onInvalid: "drop",
		},
		{
			name:    "bad json",
			path:    func(t *testing.T) string { return writeConfig(t, `{"target":`) },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFile(tt.path(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if f.Target() != tt.target {
				t.Errorf("Target() = %q, want %q", f.Target(), tt.target)
			}
			if f.DebugOutput() != tt.debugOutput {
				t.Errorf("DebugOutput() = %v, want %v", f.DebugOutput(), tt.debugOutput)
			}
			if f.OnInvalid() != tt.onInvalid {
				t.Errorf("OnInvalid() = %q, want %q", f.OnInvalid(), tt.onInvalid)
			}
		})
	}
}

func TestAnnotateOptions(t *testing.T) {
	f, err := NewFile("")
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}
	f.SetTarget("battery 1")
	f.SetDebugOutput(true)
	f.SetOnInvalid("fail")

	opts, err := AnnotateOptions(f)
	if err != nil {
		t.Fatalf("AnnotateOptions() error = %v", err)
	}
	want := annotate.Options{Target: "battery 1", Diagnostics: true, OnInvalid: annotate.PolicyFail}
	if opts != want {
		t.Errorf("AnnotateOptions() = %+v, want %+v", opts, want)
	}

	f.SetOnInvalid("explode")
	if _, err := AnnotateOptions(f); !errors.Is(err, annotate.ErrUnknownPolicy) {
		t.Errorf("AnnotateOptions() error = %v, want ErrUnknownPolicy", err)
	}

	if got := f.LogrusFields()["target"]; got != "battery 1" {
		t.Errorf("LogrusFields()[target] = %v", got)
	}
}
