package testutil

import (
	"errors"

	"github.com/shirk33y/pushwatch/internal/github"
)

// ListResponse is one scripted answer to ListWorkflowRuns.
type ListResponse struct {
	Runs []github.WorkflowRun
	Err  error
}

// GetResponse is one scripted answer to GetWorkflowRun.
type GetResponse struct {
	Run *github.WorkflowRun
	Err error
}

// ScriptedRunClient answers API calls from pre-recorded sequences, one
// entry per call. The last entry repeats once the sequence is
// exhausted, so a test can script "no match for 3 polls, then a match"
// without counting trailing calls.
type ScriptedRunClient struct {
	ListSeq []ListResponse
	GetSeq  []GetResponse

	ListCalls int
	GetCalls  int
}

// ListWorkflowRuns returns the next scripted listing.
func (c *ScriptedRunClient) ListWorkflowRuns(_ string, _ int) ([]github.WorkflowRun, error) {
	resp := pick(c.ListSeq, c.ListCalls)
	c.ListCalls++

	return resp.Runs, resp.Err
}

// GetWorkflowRun returns the next scripted run status.
func (c *ScriptedRunClient) GetWorkflowRun(_ int64) (*github.WorkflowRun, error) {
	resp := pick(c.GetSeq, c.GetCalls)
	c.GetCalls++

	if resp.Run == nil && resp.Err == nil {
		return nil, errors.New("scripted run client: no response configured")
	}

	return resp.Run, resp.Err
}

// LogResponse is one scripted answer to FetchRunLog.
type LogResponse struct {
	Text string
	Err  error
}

// ScriptedLogFetcher answers log fetches from a pre-recorded sequence.
type ScriptedLogFetcher struct {
	Seq   []LogResponse
	Calls int
}

// FetchRunLog returns the next scripted log text.
func (f *ScriptedLogFetcher) FetchRunLog(_ int64) (string, error) {
	resp := pick(f.Seq, f.Calls)
	f.Calls++

	return resp.Text, resp.Err
}

func pick[T any](seq []T, call int) T {
	var zero T
	if len(seq) == 0 {
		return zero
	}

	if call >= len(seq) {
		return seq[len(seq)-1]
	}

	return seq[call]
}
