package valueobject

// FilterState holds the active status and priority constraints.
// An empty field places no constraint.
type FilterState struct {
	Status   Status   `json:"status,omitempty" yaml:"status,omitempty"`
	Priority Priority `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// Matches reports whether a task with the given status and priority passes
func (f FilterState) Matches(status Status, priority Priority) bool {
	matchesStatus := f.Status.IsEmpty() || status == f.Status
	matchesPriority := f.Priority.IsEmpty() || priority == f.Priority
	return matchesStatus && matchesPriority
}

// IsEmpty reports whether no constraint is active
func (f FilterState) IsEmpty() bool {
	return f.Status.IsEmpty() && f.Priority.IsEmpty()
}

// ClearStatus drops the status constraint
func (f FilterState) ClearStatus() FilterState {
	f.Status = StatusNone
	return f
}

// ClearPriority drops the priority constraint
func (f FilterState) ClearPriority() FilterState {
	f.Priority = PriorityNone
	return f
}
