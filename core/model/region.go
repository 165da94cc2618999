package model

import "fmt"

// RegionTable maps a region identifier to its static carbon intensity in
// gCO2/kWh. Read-only.
type RegionTable map[string]float64

// Validate checks that every region intensity is non-negative.
func (t RegionTable) Validate() error {
	for region, v := range t {
		if v < 0 {
			return fmt.Errorf("region %s: negative carbon intensity %.2f", region, v)
		}
	}
	return nil
}

// ResourceProfile describes the resource footprint of a job used by the
// region selector's energy model.
type ResourceProfile struct {
	CPU           float64 `json:"cpu"`
	MemoryGB      float64 `json:"memory_gb"`
	GPU           float64 `json:"gpu"`
	StorageGB     float64 `json:"storage_gb"`
	DurationHours float64 `json:"duration_hours"`
}

// RegionEvaluation reports the per-region carbon cost of one job profile,
// the minimum-cost region and, when a baseline was supplied, the savings
// relative to it.
type RegionEvaluation struct {
	Costs           map[string]float64 `json:"region_costs"`
	BestRegion      string             `json:"best_region"`
	BaselineRegion  string             `json:"baseline_region,omitempty"`
	SavingsAbsolute float64            `json:"savings_absolute"`
	SavingsPercent  float64            `json:"savings_percent"`
}
