package watch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shirk33y/pushwatch/internal/github"
)

// DefaultTailInterval is the interval between log polls. Coarser than
// the locator's: logs grow more slowly than run-creation races resolve.
const DefaultTailInterval = 5 * time.Second

// Tailer streams the unseen suffix of a run's cumulative log until the
// run completes. Single-threaded: one blocking loop owns the cursor,
// so no synchronization is needed.
type Tailer struct {
	client   RunClient
	fetcher  LogFetcher
	runID    int64
	interval time.Duration
	out      io.Writer

	// cursor counts lines already emitted. It never decreases: a fetch
	// shorter than the cursor is a transient service inconsistency and
	// emits nothing.
	cursor int
}

// NewTailer creates a tailer for a located run, writing new log lines to out.
func NewTailer(client RunClient, fetcher LogFetcher, runID int64, interval time.Duration, out io.Writer) *Tailer {
	if interval <= 0 {
		interval = DefaultTailInterval
	}

	return &Tailer{
		client:   client,
		fetcher:  fetcher,
		runID:    runID,
		interval: interval,
		out:      out,
	}
}

// Cursor returns the number of lines emitted so far.
func (t *Tailer) Cursor() int {
	return t.cursor
}

// Tail polls until the run reaches a terminal state, emitting each log
// line exactly once, in order. The final iteration fetches the log once
// more after observing the completed status, so the tail of the log is
// drained before returning. Returns the terminal run.
func (t *Tailer) Tail(ctx context.Context) (*github.WorkflowRun, error) {
	for {
		run, err := t.client.GetWorkflowRun(t.runID)
		// Status fetch failures are transient: skip this iteration's
		// termination check and poll again.

		text, ferr := t.fetcher.FetchRunLog(t.runID)
		if ferr == nil {
			t.emitNew(text)
		}

		// Stop only when a completed status coincides with a successful
		// fetch. Returning on a failed fetch would leave the final
		// suffix unemitted.
		if err == nil && ferr == nil && run.IsCompleted() {
			return run, nil
		}

		if err := sleep(ctx, t.interval); err != nil {
			return nil, err
		}
	}
}

// emitNew writes the lines past the cursor and advances it. A fetch
// with no growth (or a regression) emits nothing.
func (t *Tailer) emitNew(text string) int {
	lines := splitLines(text)
	if len(lines) <= t.cursor {
		return 0
	}

	for _, line := range lines[t.cursor:] {
		fmt.Fprintln(t.out, line)
	}

	emitted := len(lines) - t.cursor
	t.cursor = len(lines)

	return emitted
}

// splitLines splits cumulative log text into lines, ignoring a trailing
// newline so a stable log does not grow by a phantom empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
