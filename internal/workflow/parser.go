package workflow

import (
	"gopkg.in/yaml.v3"
)

// Parse parses workflow YAML content into a WorkflowFile struct.
func Parse(data []byte) (WorkflowFile, error) {
	var raw rawWorkflow
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return WorkflowFile{}, err
	}

	return WorkflowFile{
		Name:     raw.Name,
		Triggers: raw.On.Events,
	}, nil
}

// rawWorkflow handles the flexible "on" field parsing.
type rawWorkflow struct {
	Name string       `yaml:"name"`
	On   rawOnTrigger `yaml:"on"`
}

// rawOnTrigger handles "on" being either a string, list, or map.
type rawOnTrigger struct {
	Events []string
}

func (t *rawOnTrigger) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		t.Events = []string{node.Value}
	case yaml.SequenceNode:
		var events []string
		if err := node.Decode(&events); err != nil {
			return err
		}

		t.Events = events
	case yaml.MappingNode:
		for i := 0; i < len(node.Content)-1; i += 2 {
			t.Events = append(t.Events, node.Content[i].Value)
		}
	}

	return nil
}
