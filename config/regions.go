package config

import (
	"fmt"

	"github.com/greenai-platform/scheduler/core/model"
	"github.com/greenai-platform/scheduler/core/region"
)

// RegionsConfig supplies the static carbon intensity table and the
// resource-combination weights of the region selector. The table lives in
// configuration so the algorithm carries no business constants.
type RegionsConfig struct {
	// Table maps region id to carbon intensity in gCO2/kWh.
	Table map[string]float64 `json:"table"`
	// Weights is the resource combination rule of the energy model.
	Weights region.Weights `json:"weights"`
	// Baseline optionally names the region used as savings reference.
	Baseline string `json:"baseline"`
}

// SetDefaults fills the weights with the documented energy model.
func (c *RegionsConfig) SetDefaults() {
	c.Weights.SetDefaults()
}

// Validate checks intensities, weights and baseline consistency.
func (c RegionsConfig) Validate() error {
	if err := model.RegionTable(c.Table).Validate(); err != nil {
		return err
	}
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.Baseline != "" {
		if _, ok := c.Table[c.Baseline]; !ok {
			return fmt.Errorf("baseline region %s not present in table", c.Baseline)
		}
	}
	return nil
}
