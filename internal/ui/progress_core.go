package ui

import (
	"errors"
	"fmt"
)

// Progress line layout. The postfix budget assumes a three digit total.
const (
	progressPrefix = "Progress: ["

	PrefixWidth  = len(progressPrefix)
	PostfixWidth = len("] xxx/xxx")
	WrapperWidth = PrefixWidth + PostfixWidth

	// MinLineWidth is the narrowest line that still gets a bar. Anything
	// narrower falls back to "Progress: done/total".
	MinLineWidth = WrapperWidth + 4

	// MaxProgressTotal is the exclusive upper bound for total, so the
	// counter fits its three column field.
	MaxProgressTotal = 1000
)

// ErrInvalidCounts is wrapped by ValidateCounts failures.
var ErrInvalidCounts = errors.New("invalid progress counts")

// ValidateCounts checks the renderer's preconditions. The renderers panic on
// violations, so callers taking counts from users should validate first.
func ValidateCounts(pending, failed, success, total int) error {
	if pending < 0 || failed < 0 || success < 0 || total < 0 {
		return fmt.Errorf("%w: counts must not be negative (pending=%d failed=%d success=%d total=%d)",
			ErrInvalidCounts, pending, failed, success, total)
	}
	if total >= MaxProgressTotal {
		return fmt.Errorf("%w: total %d must be below %d", ErrInvalidCounts, total, MaxProgressTotal)
	}
	if pending+failed+success > total {
		return fmt.Errorf("%w: pending+failed+success (%d) exceeds total %d",
			ErrInvalidCounts, pending+failed+success, total)
	}
	return nil
}

// BarWidth returns the bar body width for a line width, and false when the
// line is too narrow for a bar.
func BarWidth(lineWidth int) (int, bool) {
	if lineWidth < MinLineWidth {
		return 0, false
	}
	return lineWidth - WrapperWidth, true
}

// Segments holds the column boundaries of one rendered bar body.
// Columns [0, FailedEnd) are failed, [FailedEnd, SuccessEnd) succeeded and
// [SuccessEnd, PendingEnd) pending. If PendingEnd < Width the next column is
// the marker and the rest is remaining work.
type Segments struct {
	Width      int
	FailedEnd  int
	SuccessEnd int
	PendingEnd int
}

// ComputeSegments splits a bar body of width columns proportionally between
// the counters. total must be positive.
//
// When boundaries coincide pending wins over failed and failed over success:
// a bar with pending work never looks complete. Failed already beats success
// by being drawn first, so only success and failed have to yield to pending.
func ComputeSegments(pending, failed, success, total, width int) Segments {
	s := Segments{
		Width:      width,
		FailedEnd:  width * failed / total,
		SuccessEnd: width * (failed + success) / total,
		PendingEnd: width * (failed + success + pending) / total,
	}

	if pending > 0 {
		s.PendingEnd = max(s.PendingEnd, 1)
		if s.PendingEnd == s.SuccessEnd {
			s.SuccessEnd--
		}
		if s.PendingEnd == s.FailedEnd {
			s.FailedEnd--
		}
		// The last pending column becomes the marker, so '>' stays visible
		// until everything is done.
		s.PendingEnd--
	}

	return s
}

// FailedLen is the number of failed columns.
func (s Segments) FailedLen() int { return s.FailedEnd }

// SuccessLen is the number of success columns.
func (s Segments) SuccessLen() int { return s.SuccessEnd - s.FailedEnd }

// PendingLen is the number of pending columns, excluding the marker.
func (s Segments) PendingLen() int { return s.PendingEnd - s.SuccessEnd }

// HasMarker reports whether the in-progress marker is drawn.
func (s Segments) HasMarker() bool { return s.PendingEnd < s.Width }

// RemainingLen is the number of not-yet-reached columns after the marker.
func (s Segments) RemainingLen() int {
	if s.Width-s.PendingEnd > 1 {
		return s.Width - s.PendingEnd - 1
	}
	return 0
}
