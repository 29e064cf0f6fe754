// Package errors defines typed errors shared across the CLI.
package errors

import "fmt"

// APIError represents an error from a GitHub API operation.
type APIError struct {
	Operation string
	RunID     int64
	Err       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s for run %d: %v", e.Operation, e.RunID, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// RepoContextError indicates the repository context (root or slug)
// could not be determined. Fatal: no CI query is meaningful without it.
type RepoContextError struct {
	Reason string
	Err    error
}

func (e *RepoContextError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot determine repository context: %s: %v", e.Reason, e.Err)
	}

	return fmt.Sprintf("cannot determine repository context: %s", e.Reason)
}

func (e *RepoContextError) Unwrap() error {
	return e.Err
}

// RunNotFoundError indicates no run matching the pushed commit appeared
// within the polling budget.
type RunNotFoundError struct {
	Workflow string
	Commit   string
	Attempts int
}

func (e *RunNotFoundError) Error() string {
	return fmt.Sprintf("no %s run found for commit %s after %d attempts",
		e.Workflow, e.Commit, e.Attempts)
}
