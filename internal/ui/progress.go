package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a two-state bar: progress done out of total.
func ProgressBar(w CountedWriter, progress, total, lineWidth int) error {
	return ProgressBarWithSuccess(w, 0, 0, progress, total, lineWidth)
}

// ProgressBarWithSuccess renders one progress line with failed, success and
// pending segments into lineWidth columns:
//
//	Progress: [####>----------] 12/100
//
// Lines narrower than MinLineWidth get "Progress: done/total" without any
// color. Counts must satisfy ValidateCounts; violations panic.
func ProgressBarWithSuccess(w CountedWriter, pending, failed, success, total, lineWidth int) error {
	if err := ValidateCounts(pending, failed, success, total); err != nil {
		panic(err)
	}

	done := failed + success
	width, ok := BarWidth(lineWidth)
	if !ok {
		if err := w.WriteASCII([]byte("Progress: ")); err != nil {
			return err
		}
		return w.WriteASCII([]byte(strconv.Itoa(done) + "/" + strconv.Itoa(total)))
	}
	if total == 0 {
		panic(fmt.Errorf("%w: total must be positive to draw a bar", ErrInvalidCounts))
	}

	seg := ComputeSegments(pending, failed, success, total, width)
	bw := barWriter{w: w, palette: CurrentPalette()}

	bw.text(progressPrefix)

	if failed > 0 {
		bw.color(ProgressFailedColor)
		bw.fill(BarFill, seg.FailedLen())
	}

	bw.color(ProgressSuccessColor)
	bw.fill(BarFill, seg.SuccessLen())

	if pending > 0 {
		bw.color(ProgressPendingColor)
		bw.fill(BarFill, seg.PendingLen())
	}

	if seg.HasMarker() {
		bw.fill(BarMarker, 1)
	}

	if n := seg.RemainingLen(); n > 0 {
		bw.color(ProgressRemainingColor)
		bw.fill(BarRemaining, n)
	}

	bw.raw(bw.palette.ResetForeground())
	bw.text(fmt.Sprintf("] %3d/%d", done, total))

	return bw.err
}

// barWriter stops at the first sink error and keeps returning it.
type barWriter struct {
	w       CountedWriter
	palette Palette
	err     error
}

func (b *barWriter) text(s string) {
	if b.err == nil {
		b.err = b.w.WriteASCII([]byte(s))
	}
}

func (b *barWriter) fill(ch byte, n int) {
	if n > 0 {
		b.text(strings.Repeat(string(ch), n))
	}
}

func (b *barWriter) color(c lipgloss.Color) {
	b.raw(b.palette.Foreground(c))
}

func (b *barWriter) raw(seq string) {
	if b.err == nil && seq != "" {
		_, b.err = io.WriteString(b.w.Raw(), seq)
	}
}
