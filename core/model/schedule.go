package model

// Method tags identifying which strategy produced a slot assignment.
const (
	MethodCarbonAware = "carbon_aware"
	MethodFastest     = "fastest"
	MethodFallback    = "fallback"
)

// ScheduledWorkload is a workload with its assigned slot, the carbon cost
// incurred there and the method that produced the assignment. Records are
// created once per planning run and never mutated afterwards.
type ScheduledWorkload struct {
	Workload
	Slot       int     `json:"scheduled_time_slot"`
	CarbonCost float64 `json:"carbon_cost"`
	Method     string  `json:"scheduling_method"`
}

// Schedule is the result of one planning run: one entry per input
// workload, the aggregate carbon cost and the policy used. The caller owns
// the schedule exclusively after return.
type Schedule struct {
	Entries     []ScheduledWorkload `json:"schedule"`
	TotalCarbon float64             `json:"total_carbon"`
	Policy      string              `json:"strategy"`
}
