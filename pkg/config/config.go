package config

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/batticon/pkg/annotate"
)

type Config interface {
	// Target is the name of the block to annotate.
	Target() string
	// DebugOutput enables the plain text level lines on stdout.
	DebugOutput() bool
	// OnInvalid is the invalid percentage policy name.
	OnInvalid() string

	SetTarget(string)
	SetDebugOutput(bool)
	SetOnInvalid(string)

	LogrusFields() logrus.Fields

	// Load reads the configuration from the source.
	Load() error
}

// AnnotateOptions converts c to annotator options.
func AnnotateOptions(c Config) (annotate.Options, error) {
	policy, err := annotate.ParseInvalidPolicy(c.OnInvalid())
	if err != nil {
		return annotate.Options{}, pkgerrors.Wrap(err, "invalid onInvalid")
	}

	return annotate.Options{
		Target:      c.Target(),
		Diagnostics: c.DebugOutput(),
		OnInvalid:   policy,
	}, nil
}
