// Package annotate prepends a battery glyph to the battery block of an i3bar
// JSON stream.
package annotate

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/batticon/pkg/icon"
	"github.com/charlie0129/batticon/pkg/statusline"
)

const (
	// DefaultTarget is the i3status name of the first battery block.
	DefaultTarget = "battery 0"

	// DiagnosticLabel is printed before the level when diagnostics are on.
	DiagnosticLabel = "Battery leve"
)

// InvalidPolicy decides what happens to a line whose target block has a
// missing or unparsable percentage.
type InvalidPolicy string

const (
	// PolicySkip leaves the block untouched and still emits the line.
	PolicySkip InvalidPolicy = "skip"
	// PolicyDrop drops the whole line.
	PolicyDrop InvalidPolicy = "drop"
	// PolicyFail stops processing with an error.
	PolicyFail InvalidPolicy = "fail"
)

// ParseInvalidPolicy converts a policy name. An empty name means PolicySkip.
func ParseInvalidPolicy(s string) (InvalidPolicy, error) {
	switch p := InvalidPolicy(s); p {
	case "":
		return PolicySkip, nil
	case PolicySkip, PolicyDrop, PolicyFail:
		return p, nil
	}
	return "", errors.Wrapf(ErrUnknownPolicy, "%q (want skip, drop or fail)", s)
}

// Options configures an Annotator.
type Options struct {
	// Target is the block name to annotate. Defaults to DefaultTarget.
	Target string
	// Diagnostics writes the label and level lines before each annotated
	// JSON line.
	Diagnostics bool
	// OnInvalid defaults to PolicySkip.
	OnInvalid InvalidPolicy
}

// Annotator applies the battery icon to status lines. It keeps no state
// between lines.
type Annotator struct {
	target      string
	diagnostics bool
	onInvalid   InvalidPolicy
}

// New creates an Annotator.
func New(opts Options) (*Annotator, error) {
	policy, err := ParseInvalidPolicy(string(opts.OnInvalid))
	if err != nil {
		return nil, err
	}

	target := opts.Target
	if target == "" {
		target = DefaultTarget
	}

	return &Annotator{
		target:      target,
		diagnostics: opts.Diagnostics,
		onInvalid:   policy,
	}, nil
}

// Result is the output for one input line.
type Result struct {
	// Dropped is set when nothing is written for the line.
	Dropped bool
	// Diagnostics are plain text lines written before Output.
	Diagnostics []string
	// Output is the serialized line, without a newline.
	Output []byte
	// Annotated counts the blocks that got a glyph.
	Annotated int
}

// Lines returns everything to write for the line, in order.
func (r *Result) Lines() [][]byte {
	if r.Dropped {
		return nil
	}
	lines := make([][]byte, 0, len(r.Diagnostics)+1)
	for _, d := range r.Diagnostics {
		lines = append(lines, []byte(d))
	}
	return append(lines, r.Output)
}

// Annotate processes one line. Malformed JSON gives a dropped Result and no
// error. An error is only returned under PolicyFail, or if the line cannot be
// serialized.
func (a *Annotator) Annotate(line []byte) (*Result, error) {
	l, err := statusline.Parse(line)
	if err != nil {
		logrus.WithError(err).Debug("dropping line")
		return &Result{Dropped: true}, nil
	}

	res := &Result{}

	for _, b := range l.Blocks() {
		if b.Name() != a.target {
			continue
		}

		level, err := ParseLevel(b)
		if err != nil {
			switch a.onInvalid {
			case PolicyFail:
				return nil, errors.Wrapf(err, "block %q", a.target)
			case PolicyDrop:
				logrus.WithError(err).WithField("block", a.target).Warn("dropping line")
				return &Result{Dropped: true}, nil
			default:
				logrus.WithError(err).WithField("block", a.target).Warn("leaving block unchanged")
				continue
			}
		}

		logrus.WithFields(logrus.Fields{
			"block": a.target,
			"level": level,
		}).Debug("found battery block")
		if a.diagnostics {
			res.Diagnostics = append(res.Diagnostics, DiagnosticLabel, strconv.Itoa(level))
		}

		glyph, ok := icon.Lookup(level)
		if !ok {
			continue
		}

		fullText, err := b.GetString("full_text")
		if err != nil && b.Has("full_text") {
			logrus.WithError(err).WithField("block", a.target).Warn("leaving block unchanged")
			continue
		}
		if err := b.SetString("full_text", glyph+" "+fullText); err != nil {
			return nil, errors.Wrap(err, "failed to set full_text")
		}
		res.Annotated++
	}

	out, err := l.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize status line")
	}
	res.Output = out

	return res, nil
}
