package watch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shirk33y/pushwatch/internal/errors"
	"github.com/shirk33y/pushwatch/internal/github"
)

// Locate polling defaults. Run listings are eventually consistent: a
// run can take several seconds to appear after the push, so the locator
// polls with a short interval and a generous attempt budget.
const (
	DefaultLocateAttempts = 150
	DefaultLocateInterval = 2 * time.Second
	DefaultListLimit      = 30
)

// LocateOptions configures the run locator.
type LocateOptions struct {
	MaxAttempts int
	Interval    time.Duration
	ListLimit   int
	// Progress receives one dot per unsuccessful attempt. Nil disables it.
	Progress io.Writer
}

func (o *LocateOptions) fillDefaults() {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultLocateAttempts
	}

	if o.Interval <= 0 {
		o.Interval = DefaultLocateInterval
	}

	if o.ListLimit <= 0 {
		o.ListLimit = DefaultListLimit
	}
}

// Locate polls the run listing until a run whose head commit equals
// commitSHA appears. Matching is exact string equality; correlating on
// "latest run on the branch" instead would attribute a concurrent
// stale run's outcome to this push.
func Locate(ctx context.Context, client RunClient, workflowFile, commitSHA string, opts LocateOptions) (*github.WorkflowRun, error) {
	opts.fillDefaults()

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		runs, err := client.ListWorkflowRuns(workflowFile, opts.ListLimit)
		if err == nil {
			if run := matchRun(runs, commitSHA); run != nil {
				return run, nil
			}
		}
		// A failed listing counts as an attempt; it is retried silently.

		if opts.Progress != nil {
			fmt.Fprint(opts.Progress, ".")
		}

		if attempt == opts.MaxAttempts {
			break
		}

		if err := sleep(ctx, opts.Interval); err != nil {
			return nil, err
		}
	}

	return nil, &errors.RunNotFoundError{
		Workflow: workflowFile,
		Commit:   commitSHA,
		Attempts: opts.MaxAttempts,
	}
}

// matchRun returns the run triggered by sha, or nil. When the forge
// retried run creation and several runs share the commit, the most
// recently created one wins; list order is not stable across polls and
// cannot be trusted.
func matchRun(runs []github.WorkflowRun, sha string) *github.WorkflowRun {
	var best *github.WorkflowRun

	for i := range runs {
		if runs[i].HeadSHA != sha {
			continue
		}

		if best == nil || runs[i].CreatedAt.After(best.CreatedAt) {
			best = &runs[i]
		}
	}

	if best == nil {
		return nil
	}

	run := *best

	return &run
}

// sleep blocks for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
