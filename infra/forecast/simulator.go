// Package forecast provides carbon intensity providers backed by
// synthetic data. The generator reproduces a typical daily grid profile
// with low-carbon night hours and a high-carbon afternoon peak.
package forecast

import (
	"context"
	"math/rand"

	coreforecast "github.com/greenai-platform/scheduler/core/forecast"
	"github.com/greenai-platform/scheduler/core/model"
)

// dailyPattern is the 24-hour reference intensity profile: night low,
// morning ramp, afternoon peak, evening decline.
var dailyPattern = []float64{
	0.3, 0.2, 0.1, 0.1, 0.1, 0.2,
	0.4, 0.6, 0.7, 0.8, 0.8, 0.7,
	0.8, 0.9, 0.9, 0.8, 0.7, 0.6,
	0.5, 0.4, 0.3, 0.3, 0.2, 0.2,
}

// Intensities outside this band are clamped after jitter is applied.
const (
	minIntensity = 0.05
	maxIntensity = 0.95
)

// Config controls the synthetic generator.
type Config struct {
	// Seed makes generated forecasts reproducible. 0 keeps them
	// deterministic too, it is a valid seed.
	Seed int64 `json:"seed"`
	// NoiseStdDev scales the jitter added to each slot.
	NoiseStdDev float64 `json:"noise_std_dev"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.NoiseStdDev == 0 {
		c.NoiseStdDev = 0.05
	}
}

// Generator emits synthetic forecasts. It implements forecast.Provider.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

// New creates a seeded Generator.
func New(cfg Config) *Generator {
	cfg.SetDefaults()
	return &Generator{cfg: cfg, rand: rand.New(rand.NewSource(cfg.Seed))}
}

var _ coreforecast.Provider = (*Generator)(nil)

// Forecast returns a series of the requested length following the daily
// pattern with gaussian jitter, repeating the pattern beyond 24 slots.
func (g *Generator) Forecast(_ context.Context, slots int) (model.CarbonSeries, error) {
	if slots <= 0 {
		return model.CarbonSeries{}, nil
	}
	out := make(model.CarbonSeries, slots)
	for i := range out {
		v := dailyPattern[i%len(dailyPattern)] + g.rand.NormFloat64()*g.cfg.NoiseStdDev
		if v < minIntensity {
			v = minIntensity
		}
		if v > maxIntensity {
			v = maxIntensity
		}
		out[i] = v
	}
	return out, nil
}
