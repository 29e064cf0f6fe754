// Package workflow provides discovery and parsing of GitHub Actions workflow files.
package workflow

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/sahilm/fuzzy"
)

// Discover finds all parseable workflow files in the .github/workflows
// directory.
func Discover(repoRoot string) ([]WorkflowFile, error) {
	workflowDir := filepath.Join(repoRoot, ".github", "workflows")

	patterns := []string{
		filepath.Join(workflowDir, "*.yml"),
		filepath.Join(workflowDir, "*.yaml"),
	}

	var files []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}

		files = append(files, matches...)
	}

	var workflows []WorkflowFile

	for _, file := range files {
		wf, err := parseWorkflowFile(file)
		if err != nil {
			continue
		}

		workflows = append(workflows, wf)
	}

	sort.Slice(workflows, func(i, j int) bool {
		return workflows[i].Filename < workflows[j].Filename
	})

	return workflows, nil
}

func parseWorkflowFile(path string) (WorkflowFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WorkflowFile{}, err
	}

	wf, err := Parse(data)
	if err != nil {
		return WorkflowFile{}, err
	}

	wf.Filename = filepath.Base(path)

	return wf, nil
}

// Find returns the discovered workflow with the given filename, if any.
func Find(filename string, workflows []WorkflowFile) (WorkflowFile, bool) {
	for _, wf := range workflows {
		if wf.Filename == filename {
			return wf, true
		}
	}

	return WorkflowFile{}, false
}

// Suggest returns up to max workflow filenames fuzzy-matching name,
// best matches first. Used to hint at typos in the configured workflow.
func Suggest(name string, workflows []WorkflowFile, max int) []string {
	if len(workflows) == 0 || max <= 0 {
		return nil
	}

	candidates := make([]string, len(workflows))
	for i, wf := range workflows {
		candidates[i] = wf.Filename
	}

	matches := fuzzy.Find(name, candidates)

	var suggestions []string

	for _, match := range matches {
		suggestions = append(suggestions, match.Str)
		if len(suggestions) == max {
			break
		}
	}

	return suggestions
}
