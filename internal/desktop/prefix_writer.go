package desktop

import (
	"bytes"
	"sync"

	log "github.com/sirupsen/logrus"
)

// prefixWriter logs every complete line written to it with a prefix.
type prefixWriter struct {
	level  log.Level
	prefix string

	mu  sync.Mutex
	buf bytes.Buffer
}

func newPrefixWriter(level log.Level, prefix string) *prefixWriter {
	return &prefixWriter{
		level:  level,
		prefix: prefix,
	}
}

func (w *prefixWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadBytes('\n')
		if err != nil {
			// partial line, keep it for the next write
			w.buf.Write(line)
			break
		}
		w.logLine(line)
	}
	return len(p), nil
}

// Flush logs a trailing line without a newline.
func (w *prefixWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buf.Len() > 0 {
		w.logLine(w.buf.Bytes())
		w.buf.Reset()
	}
}

func (w *prefixWriter) logLine(line []byte) {
	line = bytes.TrimRight(line, "\r\n")
	if len(line) == 0 {
		return
	}
	log.StandardLogger().Logf(w.level, "%s %s", w.prefix, line)
}
