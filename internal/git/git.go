// Package git provides the version control operations needed to commit,
// push, and identify the commit a CI run should be correlated against.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// CommandRunner executes git commands and returns their output.
type CommandRunner interface {
	RunCommand(ctx context.Context, args ...string) ([]byte, error)
}

type defaultCommandRunner struct{}

func (r *defaultCommandRunner) RunCommand(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	return cmd.Output()
}

var runner CommandRunner = &defaultCommandRunner{}

const (
	queryTimeout  = 5 * time.Second
	commitTimeout = 30 * time.Second
	pushTimeout   = 2 * time.Minute
)

// RepoRoot returns the absolute path of the repository's top-level
// directory.
func RepoRoot(ctx context.Context) (string, error) {
	return repoRootWithRunner(ctx, runner)
}

func repoRootWithRunner(ctx context.Context, r CommandRunner) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	output, err := r.RunCommand(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to find repository root: %w", err)
	}

	root := strings.TrimSpace(string(output))
	if root == "" {
		return "", fmt.Errorf("git rev-parse --show-toplevel returned no output")
	}

	return root, nil
}

// CurrentBranch returns the currently checked out branch.
// Returns empty string if unable to determine (e.g., detached HEAD).
func CurrentBranch(ctx context.Context) string {
	return currentBranchWithRunner(ctx, runner)
}

func currentBranchWithRunner(ctx context.Context, r CommandRunner) string {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	output, err := r.RunCommand(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return ""
	}

	branch := strings.TrimSpace(string(output))
	if branch == "HEAD" {
		return ""
	}

	return branch
}

// HasLocalChanges reports whether the working tree has uncommitted or
// staged changes.
func HasLocalChanges(ctx context.Context) (bool, error) {
	return hasLocalChangesWithRunner(ctx, runner)
}

func hasLocalChangesWithRunner(ctx context.Context, r CommandRunner) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	output, err := r.RunCommand(ctx, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to read working tree status: %w", err)
	}

	return strings.TrimSpace(string(output)) != "", nil
}

// AheadCount returns how many commits the local branch is ahead of
// remote/branch. Returns an error when the remote ref is unknown
// (e.g., the branch was never pushed); callers should treat that as
// "push needed".
func AheadCount(ctx context.Context, remote, branch string) (int, error) {
	return aheadCountWithRunner(ctx, runner, remote, branch)
}

func aheadCountWithRunner(ctx context.Context, r CommandRunner, remote, branch string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ref := fmt.Sprintf("%s/%s..HEAD", remote, branch)

	output, err := r.RunCommand(ctx, "rev-list", "--count", ref)
	if err != nil {
		return 0, fmt.Errorf("failed to count commits ahead of %s/%s: %w", remote, branch, err)
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse rev-list output: %w", err)
	}

	return count, nil
}

// CommitAll stages all changes and commits them with the given message.
func CommitAll(ctx context.Context, message string) error {
	return commitAllWithRunner(ctx, runner, message)
}

func commitAllWithRunner(ctx context.Context, r CommandRunner, message string) error {
	ctx, cancel := context.WithTimeout(ctx, commitTimeout)
	defer cancel()

	if _, err := r.RunCommand(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}

	if _, err := r.RunCommand(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

// Push pushes the local branch to the remote.
func Push(ctx context.Context, remote, branch string) error {
	return pushWithRunner(ctx, runner, remote, branch)
}

func pushWithRunner(ctx context.Context, r CommandRunner, remote, branch string) error {
	ctx, cancel := context.WithTimeout(ctx, pushTimeout)
	defer cancel()

	if _, err := r.RunCommand(ctx, "push", remote, branch); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}

	return nil
}

// HeadSHA returns the fully-resolved SHA of HEAD. Must be called after
// Push so the returned commit can legitimately appear in run listings.
func HeadSHA(ctx context.Context) (string, error) {
	return headSHAWithRunner(ctx, runner)
}

func headSHAWithRunner(ctx context.Context, r CommandRunner) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	output, err := r.RunCommand(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	sha := strings.TrimSpace(string(output))
	if sha == "" {
		return "", fmt.Errorf("git rev-parse HEAD returned no output")
	}

	return sha, nil
}

// RemoteURL returns the fetch URL of the named remote.
func RemoteURL(ctx context.Context, remote string) (string, error) {
	return remoteURLWithRunner(ctx, runner, remote)
}

func remoteURLWithRunner(ctx context.Context, r CommandRunner, remote string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	output, err := r.RunCommand(ctx, "remote", "get-url", remote)
	if err != nil {
		return "", fmt.Errorf("failed to get URL for remote %s: %w", remote, err)
	}

	return strings.TrimSpace(string(output)), nil
}
