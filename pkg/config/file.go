package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/batticon/pkg/annotate"
	"github.com/charlie0129/batticon/pkg/utils/ptr"
)

var (
	defaultFileConfig = &RawFileConfig{
		Target:      ptr.To(annotate.DefaultTarget),
		DebugOutput: ptr.To(false),
		OnInvalid:   ptr.To(string(annotate.PolicySkip)),
	}
)

var _ Config = &File{}

type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

// NewFile loads the config at configPath. An empty path gives the defaults.
func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

type RawFileConfig struct {
	Target      *string `json:"target,omitempty"`
	DebugOutput *bool   `json:"debugOutput,omitempty"`
	OnInvalid   *string `json:"onInvalid,omitempty"`
}

func (f *File) Target() string {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.Target != nil && *f.c.Target != "" {
		return *f.c.Target
	}
	return *defaultFileConfig.Target
}

func (f *File) DebugOutput() bool {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.DebugOutput != nil {
		return *f.c.DebugOutput
	}
	return *defaultFileConfig.DebugOutput
}

func (f *File) OnInvalid() string {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.OnInvalid != nil {
		return *f.c.OnInvalid
	}
	return *defaultFileConfig.OnInvalid
}

func (f *File) SetTarget(s string) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Target = &s
}

func (f *File) SetDebugOutput(b bool) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.DebugOutput = &b
}

func (f *File) SetOnInvalid(s string) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.OnInvalid = &s
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.filepath == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			logrus.Warnf("config file %s does not exist, using defaults", f.filepath)
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	// Since we want to tell if the file is empty, using json.Decoder will
	// not work.
	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	err = json.Unmarshal(b, &conf)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"target":      f.Target(),
		"debugOutput": f.DebugOutput(),
		"onInvalid":   f.OnInvalid(),
	}
}
