// Package logs fetches workflow run logs through the gh CLI, which
// owns authentication.
package logs

import (
	"fmt"
	"strconv"

	"github.com/shirk33y/pushwatch/internal/exec"
)

// Fetcher fetches cumulative run logs using the gh CLI.
type Fetcher struct {
	executor exec.CommandExecutor
}

// NewFetcher creates a fetcher that shells out to gh.
func NewFetcher() *Fetcher {
	return &Fetcher{executor: exec.NewRealExecutor()}
}

// NewFetcherWithExecutor creates a fetcher with a custom executor (for testing).
func NewFetcherWithExecutor(executor exec.CommandExecutor) *Fetcher {
	return &Fetcher{executor: executor}
}

// FetchRunLog returns the full cumulative log text of a run as it
// exists at fetch time. Append-only while the run is active.
func (f *Fetcher) FetchRunLog(runID int64) (string, error) {
	stdout, stderr, err := f.executor.Execute("gh", "run", "view",
		strconv.FormatInt(runID, 10),
		"--log")

	if err != nil {
		return "", fmt.Errorf("gh command failed: %w (stderr: %s)", err, stderr)
	}

	return stdout, nil
}

// CheckGHCLIAvailable checks if gh CLI is installed and authenticated.
func CheckGHCLIAvailable() error {
	return CheckGHCLIAvailableWithExecutor(exec.NewRealExecutor())
}

// CheckGHCLIAvailableWithExecutor checks gh availability using a custom executor.
func CheckGHCLIAvailableWithExecutor(executor exec.CommandExecutor) error {
	_, _, err := executor.Execute("gh", "--version")
	if err != nil {
		return fmt.Errorf("gh CLI not found: %w (install from https://cli.github.com)", err)
	}

	_, _, err = executor.Execute("gh", "auth", "status")
	if err != nil {
		return fmt.Errorf("gh CLI not authenticated: %w (run 'gh auth login')", err)
	}

	return nil
}
