package github

import "time"

// Run statuses reported by the Actions API.
const (
	StatusQueued     = "queued"
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Run conclusions, meaningful only once a run is completed.
const (
	ConclusionSuccess   = "success"
	ConclusionFailure   = "failure"
	ConclusionCancelled = "cancelled"
	ConclusionSkipped   = "skipped"
	ConclusionTimedOut  = "timed_out"
)

// WorkflowRun is a single execution of a workflow.
type WorkflowRun struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	HeadSHA    string    `json:"head_sha"`
	HeadBranch string    `json:"head_branch"`
	Event      string    `json:"event"`
	Status     string    `json:"status"`
	Conclusion string    `json:"conclusion"`
	HTMLURL    string    `json:"html_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsCompleted returns true once the run reached its terminal status.
func (r WorkflowRun) IsCompleted() bool {
	return r.Status == StatusCompleted
}

// IsSuccess returns true if the run completed successfully.
func (r WorkflowRun) IsSuccess() bool {
	return r.Status == StatusCompleted && r.Conclusion == ConclusionSuccess
}

// RunsResponse is the list-runs API payload.
type RunsResponse struct {
	TotalCount   int           `json:"total_count"`
	WorkflowRuns []WorkflowRun `json:"workflow_runs"`
}
