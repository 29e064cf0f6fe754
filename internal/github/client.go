// Package github wraps the GitHub Actions REST API for run correlation.
package github

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/cli/go-gh/v2/pkg/repository"

	pwerrors "github.com/shirk33y/pushwatch/internal/errors"
)

// Client wraps the GitHub REST API client.
type Client struct {
	rest  *api.RESTClient
	owner string
	repo  string
}

// NewClient creates a new GitHub API client for the specified repository.
func NewClient(repoFullName string) (*Client, error) {
	parts := strings.SplitN(repoFullName, "/", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid repository format: %s (expected owner/repo)", repoFullName)
	}

	rest, err := api.DefaultRESTClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	return &Client{
		rest:  rest,
		owner: parts[0],
		repo:  parts[1],
	}, nil
}

// ListWorkflowRuns fetches the most recent runs of a workflow file,
// newest first. workflowFile is the filename under .github/workflows,
// e.g. "ci.yml".
func (c *Client) ListWorkflowRuns(workflowFile string, limit int) ([]WorkflowRun, error) {
	path := fmt.Sprintf("repos/%s/%s/actions/workflows/%s/runs?per_page=%d",
		c.owner, c.repo, url.PathEscape(workflowFile), limit)

	resp, err := c.rest.Request("GET", path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflow runs: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var runsResp RunsResponse
	if err := json.Unmarshal(body, &runsResp); err != nil {
		return nil, fmt.Errorf("failed to parse runs: %w", err)
	}

	return runsResp.WorkflowRuns, nil
}

// GetWorkflowRun fetches a single workflow run by ID.
func (c *Client) GetWorkflowRun(runID int64) (*WorkflowRun, error) {
	path := fmt.Sprintf("repos/%s/%s/actions/runs/%d", c.owner, c.repo, runID)

	resp, err := c.rest.Request("GET", path, nil)
	if err != nil {
		return nil, &pwerrors.APIError{Operation: "get workflow run", RunID: runID, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &pwerrors.APIError{Operation: "read workflow run response", RunID: runID, Err: err}
	}

	var run WorkflowRun
	if err := json.Unmarshal(body, &run); err != nil {
		return nil, &pwerrors.APIError{Operation: "parse workflow run", RunID: runID, Err: err}
	}

	return &run, nil
}

// Owner returns the repository owner.
func (c *Client) Owner() string {
	return c.owner
}

// Repo returns the repository name.
func (c *Client) Repo() string {
	return c.repo
}

// RepositoryDetector detects the current GitHub repository.
type RepositoryDetector interface {
	Current() (string, error)
}

type defaultRepositoryDetector struct{}

func (d defaultRepositoryDetector) Current() (string, error) {
	repo, err := repository.Current()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", repo.Owner, repo.Name), nil
}

var detector RepositoryDetector = defaultRepositoryDetector{}

// DetectRepo returns the current repository in "owner/repo" format.
func DetectRepo() (string, error) {
	return DetectRepoWithDetector(detector)
}

// DetectRepoWithDetector resolves the slug through a custom detector.
func DetectRepoWithDetector(det RepositoryDetector) (string, error) {
	slug, err := det.Current()
	if err != nil {
		return "", fmt.Errorf("failed to detect repository: %w", err)
	}

	return slug, nil
}
