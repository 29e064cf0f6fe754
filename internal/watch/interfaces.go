// Package watch implements the run correlation and log tailing loop:
// find the run triggered by a specific commit, stream its log until it
// completes, and map the conclusion to an exit code.
package watch

import "github.com/shirk33y/pushwatch/internal/github"

// RunClient defines the GitHub API operations needed by the watch loop.
type RunClient interface {
	ListWorkflowRuns(workflowFile string, limit int) ([]github.WorkflowRun, error)
	GetWorkflowRun(runID int64) (*github.WorkflowRun, error)
}

// LogFetcher fetches the cumulative log text of a run.
type LogFetcher interface {
	FetchRunLog(runID int64) (string, error)
}
