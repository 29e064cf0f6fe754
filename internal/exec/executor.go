// Package exec abstracts external command execution so tests can mock
// the gh and git CLIs.
package exec

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"testing"
)

// CommandExecutor defines an interface for executing external commands.
// This allows us to mock command execution in tests.
type CommandExecutor interface {
	// Execute runs a command with the given name and arguments.
	// Returns stdout, stderr, and any error.
	Execute(name string, args ...string) (stdout string, stderr string, err error)
}

// RealExecutor executes actual system commands.
type RealExecutor struct{}

// NewRealExecutor creates an executor that runs real commands.
func NewRealExecutor() *RealExecutor {
	return &RealExecutor{}
}

// Execute runs the actual command using os/exec.
// It includes a safety check to prevent accidental mutation of remote
// resources during tests.
func (e *RealExecutor) Execute(name string, args ...string) (string, string, error) {
	if testing.Testing() && isMutationCommand(name, args) {
		panic(fmt.Sprintf(
			"SAFETY VIOLATION: Attempted to run mutation command during test: %s %s\n"+
				"This could modify a real repository or GitHub resources!\n"+
				"Use exec.MockExecutor in your test instead.",
			name, strings.Join(args, " "),
		))
	}

	cmd := exec.Command(name, args...)

	var stdout bytes.Buffer

	var stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.String(), stderr.String(), err
}

// isMutationCommand checks if a command could mutate the repository or
// GitHub resources.
func isMutationCommand(name string, args []string) bool {
	if len(args) == 0 {
		return false
	}

	subcommand := args[0]

	switch name {
	case "gh":
		// Only read-only run inspection is allowed under test.
		if subcommand == "run" && len(args) > 1 {
			operation := args[1]
			if operation == "view" || operation == "list" || operation == "watch" {
				return false
			}

			return true
		}

		readOnly := map[string]bool{
			"auth":      true, // gh auth status
			"api":       true, // GETs only in this codebase
			"--version": true,
		}

		return !readOnly[subcommand]
	case "git":
		mutations := map[string]bool{
			"push":   true,
			"commit": true,
			"add":    true,
			"reset":  true,
			"rebase": true,
			"merge":  true,
			"tag":    true,
		}

		return mutations[subcommand]
	}

	return false
}
