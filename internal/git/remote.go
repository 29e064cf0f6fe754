package git

import (
	"fmt"
	"strings"
)

// ParseRemoteSlug extracts "owner/repo" from a git remote URL.
// Handles the common GitHub URL shapes:
//
//	git@github.com:owner/repo.git
//	https://github.com/owner/repo.git
//	ssh://git@github.com/owner/repo
func ParseRemoteSlug(remoteURL string) (string, error) {
	url := strings.TrimSpace(remoteURL)
	if url == "" {
		return "", fmt.Errorf("empty remote URL")
	}

	var path string

	switch {
	case strings.HasPrefix(url, "git@"):
		_, after, found := strings.Cut(url, ":")
		if !found {
			return "", fmt.Errorf("unrecognized remote URL: %s", remoteURL)
		}

		path = after
	case strings.Contains(url, "://"):
		_, after, _ := strings.Cut(url, "://")

		// Strip host (and optional user@ prefix).
		_, after, found := strings.Cut(after, "/")
		if !found {
			return "", fmt.Errorf("unrecognized remote URL: %s", remoteURL)
		}

		path = after
	default:
		return "", fmt.Errorf("unrecognized remote URL: %s", remoteURL)
	}

	path = strings.TrimSuffix(path, "/")
	path = strings.TrimSuffix(path, ".git")

	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("remote URL has no owner/repo path: %s", remoteURL)
	}

	return parts[0] + "/" + parts[1], nil
}
