package checks

import (
	"io"
	"sync"

	"github.com/rileyhilliard/tally/internal/ui"
)

// LineReporter is an Observer that keeps a single progress line up to date
// on out. Each event redraws the line in place, truncated to width columns.
type LineReporter struct {
	out   io.Writer
	total int
	width int

	mu      sync.Mutex
	pending int
	failed  int
	passed  int
	live    bool // a line has been drawn and not yet finished
	err     error
}

// NewLineReporter creates a reporter for a run of total checks. total must
// be below ui.MaxProgressTotal.
func NewLineReporter(out io.Writer, total, width int) *LineReporter {
	return &LineReporter{out: out, total: total, width: width}
}

// Start draws the initial, empty line.
func (r *LineReporter) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redraw()
}

// CheckStarted marks one more check as in flight.
func (r *LineReporter) CheckStarted(_ int, _ Check) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending++
	r.redraw()
}

// CheckFinished moves a check from in flight to its final bucket. Skipped
// checks are dropped from the in-flight count without counting as done.
func (r *LineReporter) CheckFinished(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending > 0 {
		r.pending--
	}
	switch res.Status {
	case StatusPassed:
		r.passed++
	case StatusFailed:
		r.failed++
	}
	r.redraw()
}

// Finish draws the final state and ends the line.
func (r *LineReporter) Finish() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redraw()
	if r.err == nil && r.live {
		_, r.err = io.WriteString(r.out, "\n")
	}
	r.live = false
	return r.err
}

// Counts returns the current pending, failed and passed counts.
func (r *LineReporter) Counts() (pending, failed, passed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending, r.failed, r.passed
}

// Err returns the first write error, if any. Drawing stops after it.
func (r *LineReporter) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// redraw must be called with mu held.
func (r *LineReporter) redraw() {
	if r.err != nil || r.total == 0 {
		return
	}
	if r.live {
		if r.err = ui.ClearLine(r.out); r.err != nil {
			return
		}
	}
	w := ui.NewMaxLenWriter(r.out, r.width)
	r.err = ui.ProgressBarWithSuccess(w, r.pending, r.failed, r.passed, r.total, r.width)
	r.live = true
}
