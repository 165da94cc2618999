// Package simulator generates synthetic workload batches for demos and
// tests.
package simulator

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/greenai-platform/scheduler/core/model"
)

var workloadTypes = []string{"inference", "training", "finetuning"}

// BatchConfig bounds the generated workloads.
type BatchConfig struct {
	Count       int   `json:"count"`
	MaxDeadline int   `json:"max_deadline"`
	Seed        int64 `json:"seed"`
}

// SetDefaults applies fallback values.
func (c *BatchConfig) SetDefaults() {
	if c.Count <= 0 {
		c.Count = 10
	}
	if c.MaxDeadline <= 0 {
		c.MaxDeadline = 23
	}
}

// GenerateBatch produces a reproducible batch of random workloads:
// demand in [0.1, 1.0], duration 1-5 hours, deadline in [4, MaxDeadline]
// and priority skewed toward the middle class.
func GenerateBatch(cfg BatchConfig) []model.Workload {
	cfg.SetDefaults()
	r := rand.New(rand.NewSource(cfg.Seed))
	out := make([]model.Workload, cfg.Count)
	for i := range out {
		out[i] = model.Workload{
			ID:                 uuid.NewString(),
			ComputeRequirement: 0.1 + r.Float64()*0.9,
			DurationHours:      float64(1 + r.Intn(5)),
			Deadline:           4 + r.Intn(cfg.MaxDeadline-3),
			Priority:           randomPriority(r),
			Type:               workloadTypes[r.Intn(len(workloadTypes))],
		}
	}
	return out
}

// randomPriority draws from {1, 2, 3} with weights 0.2/0.5/0.3.
func randomPriority(r *rand.Rand) int {
	switch f := r.Float64(); {
	case f < 0.2:
		return 1
	case f < 0.7:
		return 2
	default:
		return 3
	}
}
