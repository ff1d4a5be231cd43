package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/ui"
)

// BarOptions holds the counts for a one-shot bar.
type BarOptions struct {
	Pending int
	Failed  int
	Success int
	Total   int
	Width   int
}

// Bar draws a single progress line. Counts are validated up front so bad
// input is an error instead of a panic in the renderer.
func Bar(out io.Writer, opts BarOptions) error {
	if err := ui.ValidateCounts(opts.Pending, opts.Failed, opts.Success, opts.Total); err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Can't draw that bar",
			fmt.Sprintf("Counts must be non-negative, add up to at most --total, and --total must be below %d.", ui.MaxProgressTotal))
	}
	if _, ok := ui.BarWidth(opts.Width); ok && opts.Total == 0 {
		return errors.New(errors.ErrInput,
			"Can't draw a bar for zero checks",
			"Pass --total 1 or more.")
	}

	w := ui.NewMaxLenWriter(out, opts.Width)

	var err error
	if opts.Pending == 0 && opts.Failed == 0 {
		err = ui.ProgressBar(w, opts.Success, opts.Total, opts.Width)
	} else {
		err = ui.ProgressBarWithSuccess(w, opts.Pending, opts.Failed, opts.Success, opts.Total, opts.Width)
	}
	if err != nil {
		return errors.Wrap(err, "Couldn't write the progress bar")
	}

	if _, err := io.WriteString(out, "\n"); err != nil {
		return errors.Wrap(err, "Couldn't write the progress bar")
	}
	return nil
}
