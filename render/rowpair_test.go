package render

import (
	"strings"
	"testing"
)

func TestRowPairScannerGlyphs(t *testing.T) {
	g := NewGrid(8, 6)

	// First pair exercises all four glyph codes across its columns.
	g.Set(0, 0, Foreground)
	g.Set(1, 1, Foreground)
	g.Set(2, 0, Foreground)
	g.Set(2, 1, Foreground)
	// Second pair stays empty, third pair is solid.
	for x := 0; x < 8; x++ {
		g.Set(x, 4, Foreground)
		g.Set(x, 5, Foreground)
	}

	s := NewRowPairScanner(g)
	var rows []string
	for s.Scan() {
		rows = append(rows, s.Text())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	expected := []string{
		"^_S     ",
		"        ",
		"SSSSSSSS",
	}
	if len(rows) != len(expected) {
		t.Fatalf("Expected %d rows, got %d", len(expected), len(rows))
	}
	for i, want := range expected {
		if rows[i] != want {
			t.Errorf("Row %d: expected %q, got %q", i, want, rows[i])
		}
	}
}

func TestRowPairScannerRowCount(t *testing.T) {
	g := NewGrid(80, 22)

	s := NewRowPairScanner(g)
	count := 0
	for s.Scan() {
		if len(s.Bytes()) != 80 {
			t.Fatalf("Row %d: expected 80 bytes, got %d", count, len(s.Bytes()))
		}
		if s.Text() != strings.Repeat(" ", 80) {
			t.Fatalf("Row %d: expected blank row on cleared grid", count)
		}
		count++
	}
	if count != 11 {
		t.Errorf("Expected 11 rows for 22 grid rows, got %d", count)
	}
}

func TestRowPairScannerOddHeight(t *testing.T) {
	g := NewGrid(10, 5)

	s := NewRowPairScanner(g)
	if s.Scan() {
		t.Error("Expected Scan to refuse an odd-height grid")
	}
	if s.Err() == nil {
		t.Error("Expected error for odd-height grid")
	}
}

func TestRowPairScannerSinglePass(t *testing.T) {
	g := NewGrid(4, 4)

	s := NewRowPairScanner(g)
	for s.Scan() {
	}
	if s.Scan() {
		t.Error("Expected Scan to stay false after exhaustion")
	}
	if s.Err() != nil {
		t.Errorf("Expected nil error after clean exhaustion, got %v", s.Err())
	}
}

func TestRowPairScannerReusesBuffer(t *testing.T) {
	g := NewGrid(4, 4)
	for x := 0; x < 4; x++ {
		g.Set(x, 0, Foreground)
		g.Set(x, 1, Foreground)
	}

	s := NewRowPairScanner(g)
	if !s.Scan() {
		t.Fatal("Expected first Scan to succeed")
	}
	held := s.Bytes()
	if string(held) != "SSSS" {
		t.Fatalf("Expected solid first row, got %q", held)
	}

	if !s.Scan() {
		t.Fatal("Expected second Scan to succeed")
	}
	if string(held) != "    " {
		t.Errorf("Expected held slice to alias the scan buffer, got %q", held)
	}
}

// BenchmarkRowPairEncode benchmarks encoding one full frame of the default
// canvas, including the per-frame scanner setup.
func BenchmarkRowPairEncode(b *testing.B) {
	g := NewGrid(80, 22)
	for x := 0; x < 80; x += 3 {
		g.Set(x, x%22, Foreground)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewRowPairScanner(g)
		for s.Scan() {
			_ = s.Bytes()
		}
	}
}
