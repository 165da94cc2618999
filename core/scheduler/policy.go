package scheduler

import "fmt"

// Policy names a slot-assignment strategy.
type Policy string

const (
	// PolicyCarbonAware greedily targets the lowest-intensity feasible slot.
	PolicyCarbonAware Policy = "carbon_aware"
	// PolicyBalanced is an alias of PolicyCarbonAware. The upstream design
	// never gave it distinguishing logic; the equivalence is intentional
	// and callers rely on identical output.
	PolicyBalanced Policy = "balanced"
	// PolicyFastest schedules workload i at slot i, ignoring deadlines and
	// priorities. Baseline for savings calculations only.
	PolicyFastest Policy = "fastest"
)

// ParsePolicy validates a policy name received from configuration or a
// transport payload.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyCarbonAware, PolicyBalanced, PolicyFastest:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}
