package terminal

import (
	"bufio"
	"io"
	"os"
)

// Session owns the cursor state of an output stream for the lifetime of
// the render loop. Init hides the cursor and Fini restores it; Fini is
// safe to call multiple times so it can back a deferred cleanup on every
// exit path.
//
// A Session is single-owner: the render loop is the only writer.
type Session struct {
	w           *bufio.Writer
	initialized bool
	finalized   bool
}

// NewSession wraps an output stream, typically os.Stdout.
func NewSession(w io.Writer) *Session {
	return &Session{w: bufio.NewWriterSize(w, 8192)} // a full frame fits in one flush
}

// Init hides the cursor. Calling Init on a live session is a no-op.
func (s *Session) Init() error {
	if s.initialized {
		return nil
	}
	s.w.Write(csiCursorHide)
	if err := s.w.Flush(); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// Fini restores cursor visibility. Safe to call multiple times.
func (s *Session) Fini() {
	if !s.initialized || s.finalized {
		return
	}
	s.w.Write(csiCursorShow)
	s.w.Flush()
	s.finalized = true
}

// WriteRow buffers one encoded frame row followed by a newline. The write
// error is sticky: once the underlying stream fails, every later call
// reports it.
func (s *Session) WriteRow(row []byte) error {
	s.w.Write(row)
	return s.w.WriteByte('\n')
}

// EndFrame repositions the cursor to the frame origin, moving up the given
// number of text rows and back the given number of columns, then flushes
// the whole frame to the stream in one write.
func (s *Session) EndFrame(rows, cols int) error {
	writeCursorUp(s.w, rows)
	writeCursorBack(s.w, cols)
	return s.w.Flush()
}

// EmergencyReset attempts to restore cursor visibility directly on the
// writer. Call this from panic recovery if Fini() cannot be called
// normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
