// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi = []byte("\x1b[")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
)

// writeInt writes an integer without allocation
// Optimized for canvas coordinates (0-99 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := 19
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorUp writes cursor up N rows
func writeCursorUp(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('A')
}

// writeCursorBack writes cursor back N columns
func writeCursorBack(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('D')
}
