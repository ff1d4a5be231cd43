package checks

import (
	"fmt"
	"time"
)

// MaxChecks is the most checks one run can hold; the progress counter has
// a three digit field.
const MaxChecks = 999

// Check is a named shell command whose exit status decides pass or fail.
type Check struct {
	Name string // Display name
	Run  string // Command, run through the shell
	File string // Optional file the check is about, linked in the summary
	Dir  string // Working directory (empty = current)
}

// Options controls how a Runner executes checks.
type Options struct {
	Parallel int           // Max concurrent checks (0 or 1 = sequential)
	FailFast bool          // Stop starting checks after the first failure
	Timeout  time.Duration // Per-check timeout (0 = no timeout)
}

// Status is the final state of a check.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusSkipped
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result holds the outcome of one check.
type Result struct {
	Check    Check
	Index    int // Position in the check list
	Status   Status
	ExitCode int
	Err      error // Set when the command couldn't run or timed out
	Output   []byte
	Duration time.Duration
}

// ID returns a unique identifier for this result.
func (r Result) ID() string {
	return fmt.Sprintf("%s#%d", r.Check.Name, r.Index)
}

// Report is the aggregate outcome of a run. Results are ordered like the
// input checks.
type Report struct {
	Results  []Result
	Passed   int
	Failed   int
	Skipped  int
	Duration time.Duration
}

// Success returns true if nothing failed.
func (r *Report) Success() bool {
	return r.Failed == 0
}

// FailedResults returns the failed results in check order.
func (r *Report) FailedResults() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			out = append(out, res)
		}
	}
	return out
}

// Observer is notified as checks start and finish. Calls come from worker
// goroutines, so implementations must be safe for concurrent use. Skipped
// checks that never started are not reported.
type Observer interface {
	CheckStarted(index int, c Check)
	CheckFinished(r Result)
}
