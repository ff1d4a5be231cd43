package ui

import (
	"io"
	"unicode/utf8"
)

// CountedWriter writes visible text against a column budget.
//
// WriteASCII is for content known to take one column per byte. WriteText is
// for arbitrary UTF-8 and counts one column per scalar value; it never splits
// an encoded character. Raw exposes the underlying sink for zero-width
// content (color and attribute sequences, hyperlink framing) which must not
// consume budget.
type CountedWriter interface {
	WriteASCII(p []byte) error
	WriteText(s string) error
	Raw() io.Writer
}

// MaxLenWriter truncates everything written through it to maxLen columns.
// A MaxLenWriter is meant to live for one rendered line.
type MaxLenWriter struct {
	w      io.Writer
	len    int
	maxLen int
}

// NewMaxLenWriter creates a writer that allows at most maxLen columns on w.
func NewMaxLenWriter(w io.Writer, maxLen int) *MaxLenWriter {
	return &MaxLenWriter{w: w, maxLen: maxLen}
}

// AddToLen counts n extra columns, for glyphs wider than one column that
// the caller writes through Raw.
func (m *MaxLenWriter) AddToLen(n int) {
	m.len += n
}

// Len returns the number of columns written (or reserved) so far.
func (m *MaxLenWriter) Len() int {
	return m.len
}

// MaxLen returns the column budget.
func (m *MaxLenWriter) MaxLen() int {
	return m.maxLen
}

// Remaining returns how many columns are left, never negative.
func (m *MaxLenWriter) Remaining() int {
	if m.len >= m.maxLen {
		return 0
	}
	return m.maxLen - m.len
}

// WriteASCII writes as many leading bytes of p as fit in the budget.
func (m *MaxLenWriter) WriteASCII(p []byte) error {
	n := min(len(p), m.Remaining())
	if n == 0 {
		return nil
	}
	if _, err := m.w.Write(p[:n]); err != nil {
		return err
	}
	m.len += n
	return nil
}

// WriteText writes the longest prefix of s that fits in the budget, counted
// in scalar values. Invalid bytes count as one scalar value each.
func (m *MaxLenWriter) WriteText(s string) error {
	remaining := m.Remaining()
	end, chars := 0, 0
	for end < len(s) && chars < remaining {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
		chars++
	}
	if end == 0 {
		return nil
	}
	if _, err := io.WriteString(m.w, s[:end]); err != nil {
		return err
	}
	m.len += chars
	return nil
}

// Raw returns the underlying sink.
func (m *MaxLenWriter) Raw() io.Writer {
	return m.w
}

// Direct is a CountedWriter without a budget: both write operations pass
// straight through. Use it when rendering into a buffer whose width is
// managed elsewhere, e.g. a Bubble Tea view.
type Direct struct {
	W io.Writer
}

// WriteASCII writes p unmodified.
func (d Direct) WriteASCII(p []byte) error {
	_, err := d.W.Write(p)
	return err
}

// WriteText writes s unmodified.
func (d Direct) WriteText(s string) error {
	_, err := io.WriteString(d.W, s)
	return err
}

// Raw returns the underlying sink.
func (d Direct) Raw() io.Writer {
	return d.W
}
