package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rileyhilliard/tally/internal/checks"
	"github.com/rileyhilliard/tally/internal/config"
	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/logger"
	"github.com/rileyhilliard/tally/internal/ui"
)

// CheckOptions controls 'tally check'. Nil pointers fall back to the
// config's run section.
type CheckOptions struct {
	Names    []string
	Parallel *int
	FailFast *bool
	Timeout  *time.Duration
	Width    int
	Clear    bool // Clear the terminal before running
	Pause    bool // Wait for Enter after the summary
}

// RunChecks runs the selected checks behind a live progress line and prints
// a summary. A failed check is reported through an ExitError so the summary
// isn't repeated.
func RunChecks(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, opts CheckOptions) error {
	selected, err := config.SelectChecks(cfg, opts.Names)
	if err != nil {
		return err
	}

	list := make([]checks.Check, len(selected))
	for i, c := range selected {
		list[i] = checks.Check{Name: c.Name, Run: c.Run, File: c.File, Dir: c.Dir}
	}

	runOpts := checks.Options{
		Parallel: cfg.Run.Parallel,
		FailFast: cfg.Run.FailFast,
		Timeout:  cfg.Run.Timeout,
	}
	if opts.Parallel != nil {
		if *opts.Parallel < 0 {
			return errors.New(errors.ErrInput,
				"--parallel can't be negative",
				"Use 0 or 1 to run checks one at a time.")
		}
		runOpts.Parallel = *opts.Parallel
	}
	if opts.FailFast != nil {
		runOpts.FailFast = *opts.FailFast
	}
	if opts.Timeout != nil {
		runOpts.Timeout = *opts.Timeout
	}

	if opts.Clear {
		if err := ui.ClearTerminal(out); err != nil {
			return errors.Wrap(err, "Couldn't clear the terminal")
		}
	}

	logger.Default().Debug("running %d checks (parallel=%d fail_fast=%t timeout=%s)",
		len(list), runOpts.Parallel, runOpts.FailFast, runOpts.Timeout)

	reporter := checks.NewLineReporter(out, len(list), opts.Width)
	runner := checks.NewRunner(list, runOpts, reporter)

	reporter.Start()
	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	if err := reporter.Finish(); err != nil {
		return errors.Wrap(err, "Couldn't write the progress line")
	}

	if err := checks.WriteSummary(out, report, opts.Width); err != nil {
		return errors.Wrap(err, "Couldn't write the summary")
	}

	if opts.Pause {
		if _, err := io.WriteString(out, "Press Enter to continue..."); err != nil {
			return errors.Wrap(err, "Couldn't write the prompt")
		}
		if err := ui.PressEnterPrompt(in, out); err != nil {
			return errors.Wrap(err, "Couldn't read from stdin")
		}
	}

	if !report.Success() {
		return errors.NewExitError(1)
	}
	return nil
}

// checkCommand is the implementation called by the cobra command.
func checkCommand(in io.Reader, out io.Writer, opts CheckOptions) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}
	opts.Width = lineWidth(out)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return RunChecks(ctx, cfg, in, out, opts)
}

// parseTimeout parses the --timeout flag. "0" disables the timeout.
func parseTimeout(s string) (time.Duration, error) {
	if s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrInput,
			"Invalid --timeout: "+s,
			"Use a duration like 30s, 5m or 1h30m, or 0 for no timeout.")
	}
	if d < 0 {
		return 0, errors.New(errors.ErrInput,
			"--timeout can't be negative",
			"Use 0 for no timeout.")
	}
	return d, nil
}
