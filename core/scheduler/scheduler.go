package scheduler

import (
	"fmt"
	"sort"

	"github.com/greenai-platform/scheduler/core/model"
)

// Optimize assigns every workload to a time slot of the carbon series
// under the given policy and returns the resulting schedule. Inputs are
// never mutated; on error no schedule is returned. An empty workload list
// yields an empty schedule with zero total cost.
func Optimize(workloads []model.Workload, carbon model.CarbonSeries, policy Policy) (model.Schedule, error) {
	if _, err := ParsePolicy(string(policy)); err != nil {
		return model.Schedule{}, err
	}
	if carbon.Horizon() == 0 {
		return model.Schedule{}, ErrEmptyForecast
	}
	if err := carbon.Validate(); err != nil {
		return model.Schedule{}, fmt.Errorf("%w: %v", ErrEmptyForecast, err)
	}
	for _, w := range workloads {
		if err := w.Validate(); err != nil {
			return model.Schedule{}, fmt.Errorf("%w: %v", ErrInvalidWorkload, err)
		}
	}

	var entries []model.ScheduledWorkload
	switch policy {
	case PolicyFastest:
		entries = fastestPass(workloads, carbon)
	default:
		// Balanced delegates fully to the carbon-aware pass, including the
		// reported policy name. Documented equivalence, not an accident.
		policy = PolicyCarbonAware
		entries = carbonAwarePass(workloads, carbon)
	}

	total := 0.0
	for _, e := range entries {
		total += e.CarbonCost
	}
	return model.Schedule{Entries: entries, TotalCarbon: total, Policy: string(policy)}, nil
}

// carbonAwarePass runs the greedy assignment: workloads sorted by
// (priority, deadline) are placed on the cheapest slot of their feasible
// range [cursor, deadline], earliest slot on intensity ties. Workloads
// whose deadline is already behind the cursor run immediately with the
// fallback tag.
func carbonAwarePass(workloads []model.Workload, carbon model.CarbonSeries) []model.ScheduledWorkload {
	ordered := make([]model.Workload, len(workloads))
	copy(ordered, workloads)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return ordered[i].Deadline < ordered[j].Deadline
	})

	entries := make([]model.ScheduledWorkload, 0, len(ordered))
	cursor := 0
	for _, w := range ordered {
		deadline := carbon.ClampSlot(w.Deadline)
		if cursor <= deadline {
			slot := carbon.MinSlot(cursor, deadline)
			entries = append(entries, placed(w, slot, carbon, model.MethodCarbonAware))
			cursor = slot + 1
		} else {
			slot := carbon.ClampSlot(cursor)
			entries = append(entries, placed(w, slot, carbon, model.MethodFallback))
			cursor++
		}
	}
	return entries
}

// fastestPass assigns workload i to slot i in input order, clamped to the
// horizon. It exists to produce an un-optimized baseline.
func fastestPass(workloads []model.Workload, carbon model.CarbonSeries) []model.ScheduledWorkload {
	entries := make([]model.ScheduledWorkload, 0, len(workloads))
	for i, w := range workloads {
		slot := carbon.ClampSlot(i)
		entries = append(entries, placed(w, slot, carbon, model.MethodFastest))
	}
	return entries
}

func placed(w model.Workload, slot int, carbon model.CarbonSeries, method string) model.ScheduledWorkload {
	return model.ScheduledWorkload{
		Workload:   w,
		Slot:       slot,
		CarbonCost: carbon[slot] * w.ComputeRequirement,
		Method:     method,
	}
}
