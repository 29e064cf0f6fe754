package watch

import (
	"fmt"
	"io"

	"github.com/shirk33y/pushwatch/internal/github"
	"github.com/shirk33y/pushwatch/internal/ui"
)

// Process exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Report maps a terminal run to a process exit code. Any conclusion
// other than success replays the entire cumulative log once more for
// post-mortem visibility; the streamed suffixes alone scroll away with
// the terminal.
func Report(run *github.WorkflowRun, fetcher LogFetcher, out, errOut io.Writer) int {
	if run.IsSuccess() {
		fmt.Fprintln(out, ui.SuccessStyle.Render(fmt.Sprintf("✓ Run %d completed successfully", run.ID)))
		return ExitSuccess
	}

	fmt.Fprintln(out, ui.FailureStyle.Render(fmt.Sprintf("✗ Run %d concluded: %s", run.ID, run.Conclusion)))

	text, err := fetcher.FetchRunLog(run.ID)
	if err != nil {
		// The verdict is already known; a failed dump does not change it.
		fmt.Fprintf(errOut, "warning: could not fetch full log for run %d: %v\n", run.ID, err)
		return ExitFailure
	}

	fmt.Fprintln(out, ui.MutedStyle.Render(fmt.Sprintf("--- full log for run %d ---", run.ID)))

	for _, line := range splitLines(text) {
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out, ui.MutedStyle.Render("--- end of log ---"))

	return ExitFailure
}
