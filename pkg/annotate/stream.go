package annotate

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// maxLineSize bounds a single status line. Longer lines are dropped.
const maxLineSize = 1024 * 1024

// Stats counts what Run did.
type Stats struct {
	Read      int
	Emitted   int
	Dropped   int
	Annotated int
}

// LogrusFields returns the stats as log fields.
func (s Stats) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"read":      s.Read,
		"emitted":   s.Emitted,
		"dropped":   s.Dropped,
		"annotated": s.Annotated,
	}
}

// Run annotates every line of r and writes the results to w until r is
// exhausted. Output is flushed after each line so the status bar updates
// immediately.
func (a *Annotator) Run(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	in := bufio.NewReaderSize(r, 64*1024)
	out := bufio.NewWriter(w)

	for {
		line, tooLong, err := readLine(in)
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, errors.Wrap(err, "failed to read input")
		}
		stats.Read++

		if tooLong {
			logrus.WithField("line", stats.Read).Warnf("dropping line longer than %d bytes", maxLineSize)
			stats.Dropped++
			continue
		}

		res, err := a.Annotate(line)
		if err != nil {
			return stats, errors.Wrapf(err, "line %d", stats.Read)
		}

		if res.Dropped {
			stats.Dropped++
			continue
		}

		for _, line := range res.Lines() {
			if _, err := out.Write(line); err != nil {
				return stats, errors.Wrap(err, "failed to write output")
			}
			if err := out.WriteByte('\n'); err != nil {
				return stats, errors.Wrap(err, "failed to write output")
			}
		}
		if err := out.Flush(); err != nil {
			return stats, errors.Wrap(err, "failed to flush output")
		}

		stats.Emitted++
		stats.Annotated += res.Annotated
	}

	return stats, nil
}

// readLine reads one line without its line ending. Bytes past maxLineSize are
// discarded and tooLong is set.
func readLine(r *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		frag, isPrefix, err := r.ReadLine()
		if err != nil {
			return nil, false, err
		}

		if !tooLong {
			if len(line)+len(frag) > maxLineSize {
				tooLong = true
				line = nil
			} else {
				line = append(line, frag...)
			}
		}

		if !isPrefix {
			return line, tooLong, nil
		}
	}
}
