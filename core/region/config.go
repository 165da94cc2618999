package region

import "fmt"

// Weights defines the linear resource-combination rule of the energy
// model: each weight is the kWh drawn per resource unit per hour. The
// defaults come from the platform's reference energy model and can be
// overridden in configuration.
type Weights struct {
	CPUWeight     float64 `json:"cpu_weight" yaml:"cpu_weight"`
	MemoryWeight  float64 `json:"memory_weight" yaml:"memory_weight"`
	GPUWeight     float64 `json:"gpu_weight" yaml:"gpu_weight"`
	StorageWeight float64 `json:"storage_weight" yaml:"storage_weight"`
}

// DefaultWeights returns the documented default combination rule.
func DefaultWeights() Weights {
	return Weights{
		CPUWeight:     0.08,
		MemoryWeight:  0.03,
		GPUWeight:     0.25,
		StorageWeight: 0.0005,
	}
}

// SetDefaults fills an all-zero weight set with the documented defaults.
func (w *Weights) SetDefaults() {
	if *w == (Weights{}) {
		*w = DefaultWeights()
	}
}

// Validate rejects negative multipliers.
func (w Weights) Validate() error {
	if w.CPUWeight < 0 || w.MemoryWeight < 0 || w.GPUWeight < 0 || w.StorageWeight < 0 {
		return fmt.Errorf("resource weights must be non-negative")
	}
	return nil
}
