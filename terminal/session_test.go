package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestSessionInitHidesCursor(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(&buf)

	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if buf.String() != "\x1b[?25l" {
		t.Errorf("Expected cursor hide sequence, got %q", buf.String())
	}

	// Second Init must not repeat the sequence.
	if err := s.Init(); err != nil {
		t.Fatalf("Repeated Init failed: %v", err)
	}
	if buf.String() != "\x1b[?25l" {
		t.Errorf("Expected single hide sequence after repeated Init, got %q", buf.String())
	}
}

func TestSessionFiniShowsCursorOnce(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(&buf)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	s.Fini()
	s.Fini()

	if got := strings.Count(buf.String(), "\x1b[?25h"); got != 1 {
		t.Errorf("Expected exactly one cursor show sequence, got %d in %q", got, buf.String())
	}
}

func TestSessionFiniBeforeInitIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(&buf)

	s.Fini()

	if buf.Len() != 0 {
		t.Errorf("Expected no output from Fini on uninitialized session, got %q", buf.String())
	}
}

func TestSessionFrameLayout(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(&buf)

	if err := s.WriteRow([]byte("^_S")); err != nil {
		t.Fatalf("WriteRow failed: %v", err)
	}
	if err := s.WriteRow([]byte("   ")); err != nil {
		t.Fatalf("WriteRow failed: %v", err)
	}
	if err := s.EndFrame(2, 3); err != nil {
		t.Fatalf("EndFrame failed: %v", err)
	}

	want := "^_S\n   \n\x1b[2A\x1b[3D"
	if buf.String() != want {
		t.Errorf("Expected frame %q, got %q", want, buf.String())
	}
}

func TestSessionWriteErrorIsSticky(t *testing.T) {
	s := NewSession(failWriter{})

	if err := s.Init(); err == nil {
		t.Fatal("Expected Init to report stream failure")
	}
	if err := s.WriteRow([]byte("x")); err == nil {
		t.Error("Expected WriteRow to report the latched failure")
	}
	if err := s.EndFrame(1, 1); err == nil {
		t.Error("Expected EndFrame to report the latched failure")
	}
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer

	EmergencyReset(&buf)

	if !strings.Contains(buf.String(), "\x1b[?25h") {
		t.Errorf("Expected cursor show sequence, got %q", buf.String())
	}
}
