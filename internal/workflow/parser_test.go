package workflow

import (
	"reflect"
	"testing"
)

func TestParseTriggerForms(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantName string
		want     []string
	}{
		{
			name:     "scalar trigger",
			yaml:     "name: CI\non: push\n",
			wantName: "CI",
			want:     []string{"push"},
		},
		{
			name: "list trigger",
			yaml: "name: CI\non: [push, pull_request]\n",
			want: []string{"push", "pull_request"},
		},
		{
			name: "map trigger",
			yaml: `
name: CI
on:
  push:
    branches: [main]
  workflow_dispatch:
`,
			want: []string{"push", "workflow_dispatch"},
		},
		{
			name: "no trigger",
			yaml: "name: CI\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			if tt.wantName != "" && wf.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", wf.Name, tt.wantName)
			}

			if !reflect.DeepEqual(wf.Triggers, tt.want) {
				t.Errorf("Triggers = %v, want %v", wf.Triggers, tt.want)
			}
		})
	}
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("on: [unclosed")); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestHasTrigger(t *testing.T) {
	wf := WorkflowFile{Triggers: []string{"push", "pull_request"}}

	if !wf.HasTrigger("push") {
		t.Error("HasTrigger(push) = false, want true")
	}

	if wf.HasTrigger("schedule") {
		t.Error("HasTrigger(schedule) = true, want false")
	}
}
