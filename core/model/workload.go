package model

import "fmt"

// Workload represents a pending compute job awaiting placement on the
// planning horizon. Workloads are immutable inputs: planners never mutate
// them and return new ScheduledWorkload records instead.
type Workload struct {
	ID string `json:"id"`

	// ComputeRequirement is a non-negative scalar resource demand used to
	// scale carbon intensity into a cost figure.
	ComputeRequirement float64 `json:"compute_requirement"`

	// DurationHours is informational for slot assignment; it feeds the
	// region selector's energy model.
	DurationHours float64 `json:"duration_hours"`

	// Deadline is the last slot index in which the workload may legally
	// run. Deadlines beyond the forecast horizon are clamped to the final
	// valid index.
	Deadline int `json:"deadline"`

	// Priority is a small positive integer; lower value means higher
	// priority.
	Priority int `json:"priority"`

	// Type optionally classifies the workload (training, inference, ...).
	Type string `json:"type,omitempty"`
}

// Validate checks that the workload is sound as a planner input.
func (w Workload) Validate() error {
	if w.ComputeRequirement < 0 {
		return fmt.Errorf("workload %s: compute requirement must be non-negative", w.ID)
	}
	if w.Deadline < 0 {
		return fmt.Errorf("workload %s: deadline must be non-negative", w.ID)
	}
	if w.Priority < 1 {
		return fmt.Errorf("workload %s: priority must be positive", w.ID)
	}
	return nil
}
