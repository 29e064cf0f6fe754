package exec

import (
	"testing"
)

func TestIsMutationCommand(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		want    bool
	}{
		{
			name:    "blocks git push",
			command: "git",
			args:    []string{"push", "origin", "main"},
			want:    true,
		},
		{
			name:    "blocks git commit",
			command: "git",
			args:    []string{"commit", "-m", "test"},
			want:    true,
		},
		{
			name:    "blocks git add",
			command: "git",
			args:    []string{"add", "-A"},
			want:    true,
		},
		{
			name:    "allows git status",
			command: "git",
			args:    []string{"status", "--porcelain"},
			want:    false,
		},
		{
			name:    "allows git rev-parse",
			command: "git",
			args:    []string{"rev-parse", "HEAD"},
			want:    false,
		},
		{
			name:    "blocks gh run cancel",
			command: "gh",
			args:    []string{"run", "cancel", "123"},
			want:    true,
		},
		{
			name:    "blocks gh workflow run",
			command: "gh",
			args:    []string{"workflow", "run", "ci.yml"},
			want:    true,
		},
		{
			name:    "allows gh run view",
			command: "gh",
			args:    []string{"run", "view", "123", "--log"},
			want:    false,
		},
		{
			name:    "allows gh auth status",
			command: "gh",
			args:    []string{"auth", "status"},
			want:    false,
		},
		{
			name:    "allows gh api reads",
			command: "gh",
			args:    []string{"api", "repos/octo/widgets/actions/runs"},
			want:    false,
		},
		{
			name:    "allows other commands",
			command: "echo",
			args:    []string{"hello"},
			want:    false,
		},
		{
			name:    "allows bare command",
			command: "gh",
			args:    nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isMutationCommand(tt.command, tt.args); got != tt.want {
				t.Errorf("isMutationCommand(%s %v) = %v, want %v", tt.command, tt.args, got, tt.want)
			}
		})
	}
}

func TestRealExecutorPanicsOnMutationDuringTest(t *testing.T) {
	executor := NewRealExecutor()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for git push under test, got none")
		}
	}()

	_, _, _ = executor.Execute("git", "push", "origin", "main")
}
