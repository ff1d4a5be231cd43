package checks

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/logger"
)

// execFunc runs one check. Swapped out in tests.
type execFunc func(ctx context.Context, c Check, timeout time.Duration) ([]byte, int, error)

// job is a check plus its position in the input list.
type job struct {
	index int
	check Check
}

// Runner executes checks with a bounded worker pool and reports progress to
// an Observer.
type Runner struct {
	checks   []Check
	opts     Options
	observer Observer
	log      logger.Logger
	exec     execFunc

	cancelOnce sync.Once
	cancelFunc context.CancelFunc
}

// NewRunner creates a runner. observer may be nil.
func NewRunner(checks []Check, opts Options, observer Observer) *Runner {
	return &Runner{
		checks:   checks,
		opts:     opts,
		observer: observer,
		log:      logger.Default(),
		exec:     runLocal,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(l logger.Logger) {
	r.log = l
}

// Run executes every check and returns the aggregate report. Workers pull
// from a shared queue; with FailFast the first failure cancels the rest.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if len(r.checks) > MaxChecks {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Too many checks: %d (at most %d per run)", len(r.checks), MaxChecks),
			"Split the checks across several runs, or select some by name.")
	}

	report := &Report{Results: make([]Result, len(r.checks))}
	if len(r.checks) == 0 {
		return report, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancelFunc = cancel
	defer cancel()

	start := time.Now()

	queue := make(chan job, len(r.checks))
	for i, c := range r.checks {
		queue <- job{index: i, check: c}
	}
	close(queue)

	numWorkers := r.opts.Parallel
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(r.checks) {
		numWorkers = len(r.checks)
	}
	r.log.Debug("running %d checks with %d workers", len(r.checks), numWorkers)

	results := make(chan Result, len(r.checks))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, queue, results)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		report.Results[res.Index] = res
	}

	// Workers drain the queue even after cancellation, so every slot is set.
	for _, res := range report.Results {
		switch res.Status {
		case StatusPassed:
			report.Passed++
		case StatusFailed:
			report.Failed++
		case StatusSkipped:
			report.Skipped++
		}
	}

	report.Duration = time.Since(start)
	return report, nil
}

func (r *Runner) worker(ctx context.Context, queue <-chan job, results chan<- Result) {
	for j := range queue {
		if ctx.Err() != nil {
			results <- Result{Check: j.check, Index: j.index, Status: StatusSkipped}
			continue
		}

		res := r.execute(ctx, j)
		results <- res

		if res.Status == StatusFailed && r.opts.FailFast {
			r.cancelOnce.Do(func() {
				r.log.Debug("check %s failed, cancelling remaining checks", res.ID())
				r.cancelFunc()
			})
		}
	}
}

func (r *Runner) execute(ctx context.Context, j job) Result {
	if r.observer != nil {
		r.observer.CheckStarted(j.index, j.check)
	}

	start := time.Now()
	output, exitCode, err := r.exec(ctx, j.check, r.opts.Timeout)

	res := Result{
		Check:    j.check,
		Index:    j.index,
		ExitCode: exitCode,
		Err:      err,
		Output:   output,
		Duration: time.Since(start),
	}

	switch {
	case err != nil && stderrors.Is(err, context.Canceled):
		res.Status = StatusSkipped
	case err != nil || exitCode != 0:
		res.Status = StatusFailed
	default:
		res.Status = StatusPassed
	}

	r.log.Debug("check %s %s in %s (exit %d)", res.ID(), res.Status, res.Duration, exitCode)

	if r.observer != nil {
		r.observer.CheckFinished(res)
	}
	return res
}
