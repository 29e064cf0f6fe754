package workflow

// WorkflowFile describes a workflow definition found on disk.
type WorkflowFile struct {
	Name     string
	Filename string
	Triggers []string
}

// HasTrigger reports whether the workflow is triggered by the given event.
func (w WorkflowFile) HasTrigger(event string) bool {
	for _, t := range w.Triggers {
		if t == event {
			return true
		}
	}

	return false
}
