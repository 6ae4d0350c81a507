package logging

import (
	"bytes"
	"io"
)

// PrefixWriter decorates an io.Writer so that every complete line is
// emitted with a fixed marker in front of it. Partial lines are held
// back until their newline arrives.
type PrefixWriter struct {
	prefix  string
	writer  io.Writer
	pending bytes.Buffer
}

// NewPrefixWriter wraps w with the given per-line prefix.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{prefix: prefix, writer: w}
}

// Write implements io.Writer. It reports len(p) consumed on success so
// callers never re-send buffered bytes.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.pending.Write(p)

	for {
		raw := pw.pending.Bytes()
		nl := bytes.IndexByte(raw, '\n')
		if nl < 0 {
			break
		}
		line := pw.pending.Next(nl + 1)
		if _, err := io.WriteString(pw.writer, pw.prefix); err != nil {
			return 0, err
		}
		if _, err := pw.writer.Write(line); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
