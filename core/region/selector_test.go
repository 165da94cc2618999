package region

import (
	"errors"
	"math"
	"testing"

	"github.com/greenai-platform/scheduler/core/model"
)

func TestEvaluateSelectsCheapestRegion(t *testing.T) {
	sel := NewSelector(Weights{CPUWeight: 1})
	profile := model.ResourceProfile{CPU: 1, DurationHours: 1}
	regions := model.RegionTable{"east": 380, "west": 350}

	eval, err := sel.Evaluate(profile, regions, "east")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if eval.BestRegion != "west" {
		t.Fatalf("expected west, got %s", eval.BestRegion)
	}
	if eval.Costs["east"] != 380 || eval.Costs["west"] != 350 {
		t.Fatalf("bad costs: %v", eval.Costs)
	}
	if eval.SavingsAbsolute != 30 {
		t.Fatalf("expected savings 30, got %f", eval.SavingsAbsolute)
	}
	if math.Abs(eval.SavingsPercent-7.894736842105263) > 1e-9 {
		t.Fatalf("expected ~7.89%%, got %f", eval.SavingsPercent)
	}
}

func TestEvaluateTieBreaksLexically(t *testing.T) {
	sel := NewSelector(Weights{CPUWeight: 1})
	profile := model.ResourceProfile{CPU: 2}
	regions := model.RegionTable{"zeta": 100, "alpha": 100, "mid": 100}

	eval, err := sel.Evaluate(profile, regions, "")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if eval.BestRegion != "alpha" {
		t.Fatalf("expected alpha on tie, got %s", eval.BestRegion)
	}
}

func TestEvaluateZeroBaselineCost(t *testing.T) {
	sel := NewSelector(Weights{CPUWeight: 1})
	profile := model.ResourceProfile{CPU: 1}
	regions := model.RegionTable{"free": 0, "dirty": 500}

	eval, err := sel.Evaluate(profile, regions, "free")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if eval.SavingsPercent != 0 {
		t.Fatalf("zero baseline must report 0%%, got %f", eval.SavingsPercent)
	}
}

func TestEvaluateErrors(t *testing.T) {
	sel := NewSelector(Weights{})
	profile := model.ResourceProfile{CPU: 1}

	if _, err := sel.Evaluate(profile, model.RegionTable{}, ""); !errors.Is(err, ErrEmptyRegionTable) {
		t.Fatalf("expected ErrEmptyRegionTable, got %v", err)
	}
	regions := model.RegionTable{"east": 380}
	if _, err := sel.Evaluate(profile, regions, "mars"); !errors.Is(err, ErrUnknownBaselineRegion) {
		t.Fatalf("expected ErrUnknownBaselineRegion, got %v", err)
	}
}

func TestEnergyModelDefaults(t *testing.T) {
	sel := NewSelector(Weights{})
	profile := model.ResourceProfile{CPU: 4, MemoryGB: 8, GPU: 1, StorageGB: 100, DurationHours: 2}
	// 4*0.08 + 8*0.03 + 1*0.25 + 100*0.0005 = 0.86 kWh/h over 2 hours.
	want := 0.86 * 2
	if got := sel.EnergyKWh(profile); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %.3f kWh, got %.3f", want, got)
	}
}

func TestEnergyDefaultsToOneHour(t *testing.T) {
	sel := NewSelector(Weights{CPUWeight: 0.5})
	got := sel.EnergyKWh(model.ResourceProfile{CPU: 2})
	if got != 1 {
		t.Fatalf("zero duration should count as one hour, got %f", got)
	}
}
