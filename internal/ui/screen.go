package ui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// ClearTerminal moves the cursor home and erases the screen and the
// scrollback buffer.
func ClearTerminal(w io.Writer) error {
	seq := termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, 1, 1) +
		termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 2) +
		termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 3)
	_, err := io.WriteString(w, seq)
	return err
}

// ClearLine returns the cursor to column 0 and erases the current line, so
// the next progress line replaces the previous one.
func ClearLine(w io.Writer) error {
	_, err := io.WriteString(w, "\r"+termenv.CSI+termenv.EraseEntireLineSeq)
	return err
}

type flusher interface {
	Flush() error
}

// PressEnterPrompt flushes out (if it buffers), waits for a line (or EOF)
// on in and then moves out to a fresh line.
func PressEnterPrompt(in io.Reader, out io.Writer) error {
	if f, ok := out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return err
		}
	}
	if _, err := bufio.NewReader(in).ReadBytes('\n'); err != nil && err != io.EOF {
		return err
	}
	_, err := io.WriteString(out, "\n")
	return err
}
