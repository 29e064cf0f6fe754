// Package testutil provides fixtures and scripted collaborators shared
// by package tests.
package testutil

import (
	"strconv"
	"time"

	"github.com/shirk33y/pushwatch/internal/github"
)

// BaseTime is a fixed reference time for run fixtures.
var BaseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// RunFixture creates a workflow run with the given properties.
func RunFixture(id int64, sha, status, conclusion string, createdAt time.Time) github.WorkflowRun {
	return github.WorkflowRun{
		ID:         id,
		Name:       "CI",
		HeadSHA:    sha,
		HeadBranch: "main",
		Event:      "push",
		Status:     status,
		Conclusion: conclusion,
		HTMLURL:    "https://github.com/octo/widgets/actions/runs/" + strconv.FormatInt(id, 10),
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

// CompletedRun creates a completed run with the given conclusion.
func CompletedRun(id int64, sha, conclusion string) github.WorkflowRun {
	return RunFixture(id, sha, github.StatusCompleted, conclusion, BaseTime)
}

// ActiveRun creates an in-progress run.
func ActiveRun(id int64, sha string) github.WorkflowRun {
	return RunFixture(id, sha, github.StatusInProgress, "", BaseTime)
}
