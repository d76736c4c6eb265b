package logging

import (
	"io"

	"go.uber.org/multierr"
)

// teeWriter writes each entry to every target. A failing target does not
// stop the others.
type teeWriter struct {
	targets []io.Writer
}

func newTeeWriter(targets ...io.Writer) *teeWriter {
	return &teeWriter{targets: targets}
}

// Write reports len(p) as soon as one target took the entry.
func (t *teeWriter) Write(p []byte) (int, error) {
	var errs error
	written := false
	for _, target := range t.targets {
		if _, err := target.Write(p); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		written = true
	}
	if written {
		return len(p), errs
	}
	return 0, errs
}
