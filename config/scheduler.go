package config

import (
	"fmt"

	"github.com/greenai-platform/scheduler/core/scheduler"
)

// SchedulerConfig defines planning parameters.
type SchedulerConfig struct {
	// DefaultPolicy is used when a batch request does not name one.
	DefaultPolicy string `json:"default_policy"`
	// HorizonSlots is the forecast length requested from the provider when
	// a batch does not carry its own forecast.
	HorizonSlots int `json:"horizon_slots"`
}

// SetDefaults applies fallback values for optional fields.
func (c *SchedulerConfig) SetDefaults() {
	if c.DefaultPolicy == "" {
		c.DefaultPolicy = string(scheduler.PolicyCarbonAware)
	}
	if c.HorizonSlots <= 0 {
		c.HorizonSlots = 24
	}
}

// Validate checks that the configured policy exists.
func (c SchedulerConfig) Validate() error {
	if _, err := scheduler.ParsePolicy(c.DefaultPolicy); err != nil {
		return fmt.Errorf("scheduler config: %w", err)
	}
	return nil
}
