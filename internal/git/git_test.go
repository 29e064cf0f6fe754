package git

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner answers git invocations from a map keyed by joined args.
type fakeRunner struct {
	responses map[string]string
	errors    map[string]error
	calls     []string
}

func (r *fakeRunner) RunCommand(_ context.Context, args ...string) ([]byte, error) {
	key := strings.Join(args, " ")
	r.calls = append(r.calls, key)

	if err, ok := r.errors[key]; ok {
		return nil, err
	}

	out, ok := r.responses[key]
	if !ok {
		return nil, errors.New("fake runner: no response for: " + key)
	}

	return []byte(out), nil
}

func TestCurrentBranch(t *testing.T) {
	tests := []struct {
		name   string
		output string
		err    error
		want   string
	}{
		{name: "on a branch", output: "feature/tail\n", want: "feature/tail"},
		{name: "detached HEAD", output: "HEAD\n", want: ""},
		{name: "git error", err: errors.New("not a repo"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{
				responses: map[string]string{"rev-parse --abbrev-ref HEAD": tt.output},
				errors:    map[string]error{},
			}
			if tt.err != nil {
				r.errors["rev-parse --abbrev-ref HEAD"] = tt.err
			}

			got := currentBranchWithRunner(context.Background(), r)
			if got != tt.want {
				t.Errorf("currentBranch = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasLocalChanges(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{name: "clean tree", output: "", want: false},
		{name: "whitespace only", output: "\n", want: false},
		{name: "modified file", output: " M main.go\n", want: true},
		{name: "untracked file", output: "?? notes.txt\n", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{responses: map[string]string{"status --porcelain": tt.output}}

			got, err := hasLocalChangesWithRunner(context.Background(), r)
			if err != nil {
				t.Fatalf("hasLocalChanges error = %v", err)
			}

			if got != tt.want {
				t.Errorf("hasLocalChanges = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAheadCount(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{"rev-list --count origin/main..HEAD": "3\n"}}

	got, err := aheadCountWithRunner(context.Background(), r, "origin", "main")
	if err != nil {
		t.Fatalf("aheadCount error = %v", err)
	}

	if got != 3 {
		t.Errorf("aheadCount = %d, want 3", got)
	}
}

func TestAheadCountNoUpstream(t *testing.T) {
	r := &fakeRunner{
		responses: map[string]string{},
		errors:    map[string]error{"rev-list --count origin/topic..HEAD": errors.New("unknown revision")},
	}

	if _, err := aheadCountWithRunner(context.Background(), r, "origin", "topic"); err == nil {
		t.Error("expected error for missing upstream, got nil")
	}
}

func TestHeadSHA(t *testing.T) {
	const sha = "0123456789abcdef0123456789abcdef01234567"

	r := &fakeRunner{responses: map[string]string{"rev-parse HEAD": sha + "\n"}}

	got, err := headSHAWithRunner(context.Background(), r)
	if err != nil {
		t.Fatalf("headSHA error = %v", err)
	}

	if got != sha {
		t.Errorf("headSHA = %q, want %q", got, sha)
	}
}

func TestCommitAllStagesThenCommits(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{
		"add -A":           "",
		"commit -m fix it": "",
	}}

	if err := commitAllWithRunner(context.Background(), r, "fix it"); err != nil {
		t.Fatalf("commitAll error = %v", err)
	}

	want := []string{"add -A", "commit -m fix it"}
	if len(r.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}

	for i := range want {
		if r.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, r.calls[i], want[i])
		}
	}
}

func TestPush(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{"push origin main": ""}}

	if err := pushWithRunner(context.Background(), r, "origin", "main"); err != nil {
		t.Fatalf("push error = %v", err)
	}
}

func TestRepoRoot(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{"rev-parse --show-toplevel": "/home/dev/widgets\n"}}

	got, err := repoRootWithRunner(context.Background(), r)
	if err != nil {
		t.Fatalf("repoRoot error = %v", err)
	}

	if got != "/home/dev/widgets" {
		t.Errorf("repoRoot = %q, want %q", got, "/home/dev/widgets")
	}
}
