package ui

import (
	"errors"
	"strings"
)

// ANSI sequences produced by the default palette.
const (
	seqRed       = "\x1b[31m"
	seqGreen     = "\x1b[32m"
	seqBlue      = "\x1b[34m"
	seqCyan      = "\x1b[36m"
	seqResetFg   = "\x1b[39m"
	seqUnderline = "\x1b[4m"
	seqNoUnder   = "\x1b[24m"
)

// stripANSI removes CSI sequences (ESC [ ... final byte) and OSC sequences
// (ESC ] ... ESC \) so tests can check the visible text.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\x1b' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '[':
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			i = j
		case ']':
			end := strings.Index(s[i:], "\x1b\\")
			if end < 0 {
				return b.String()
			}
			i += end + 1
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// failingWriter accepts limit bytes and then fails every write.
type failingWriter struct {
	limit   int
	written strings.Builder
}

var errSinkClosed = errors.New("sink closed")

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.written.Len()+len(p) > f.limit {
		return 0, errSinkClosed
	}
	f.written.Write(p)
	return len(p), nil
}

// recordingWriter remembers the size of every Write call.
type recordingWriter struct {
	strings.Builder
	calls []int
}

func (r *recordingWriter) Write(p []byte) (int, error) {
	r.calls = append(r.calls, len(p))
	return r.Builder.Write(p)
}
