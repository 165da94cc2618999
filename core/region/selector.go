// Package region evaluates the carbon cost of running a job profile in
// each candidate region of a static intensity table and identifies the
// cheapest placement.
package region

import (
	"errors"
	"sort"

	"github.com/greenai-platform/scheduler/core/model"
)

var (
	// ErrEmptyRegionTable indicates an evaluation over no regions.
	ErrEmptyRegionTable = errors.New("empty region table")
	// ErrUnknownBaselineRegion indicates a baseline missing from the table.
	ErrUnknownBaselineRegion = errors.New("unknown baseline region")
)

// Selector scores region placements using a configured resource
// combination rule. Stateless and safe for concurrent use.
type Selector struct {
	weights Weights
}

// NewSelector returns a selector using the given combination rule.
// Zero-value weights fall back to the documented defaults.
func NewSelector(w Weights) Selector {
	w.SetDefaults()
	return Selector{weights: w}
}

// EnergyKWh returns the estimated energy drawn by the profile over its
// duration. A non-positive duration counts as one hour.
func (s Selector) EnergyKWh(p model.ResourceProfile) float64 {
	hours := p.DurationHours
	if hours <= 0 {
		hours = 1
	}
	draw := p.CPU*s.weights.CPUWeight +
		p.MemoryGB*s.weights.MemoryWeight +
		p.GPU*s.weights.GPUWeight +
		p.StorageGB*s.weights.StorageWeight
	return draw * hours
}

// Evaluate computes the carbon cost of the profile in every region and
// selects the minimum, breaking ties by lexical region order. When
// baseline names a region of the table, absolute and percentage savings
// versus that baseline are reported; a zero baseline cost yields 0%.
func (s Selector) Evaluate(profile model.ResourceProfile, regions model.RegionTable, baseline string) (model.RegionEvaluation, error) {
	if len(regions) == 0 {
		return model.RegionEvaluation{}, ErrEmptyRegionTable
	}
	if err := regions.Validate(); err != nil {
		return model.RegionEvaluation{}, err
	}
	if baseline != "" {
		if _, ok := regions[baseline]; !ok {
			return model.RegionEvaluation{}, ErrUnknownBaselineRegion
		}
	}

	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)

	energy := s.EnergyKWh(profile)
	costs := make(map[string]float64, len(regions))
	best := names[0]
	for _, name := range names {
		costs[name] = regions[name] * energy
		if costs[name] < costs[best] {
			best = name
		}
	}

	eval := model.RegionEvaluation{Costs: costs, BestRegion: best, BaselineRegion: baseline}
	if baseline != "" {
		baseCost := costs[baseline]
		eval.SavingsAbsolute = baseCost - costs[best]
		if baseCost != 0 {
			eval.SavingsPercent = eval.SavingsAbsolute / baseCost * 100
		}
	}
	return eval, nil
}
