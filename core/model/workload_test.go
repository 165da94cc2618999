package model

import "testing"

func TestWorkloadValidate(t *testing.T) {
	good := Workload{ID: "w", ComputeRequirement: 0.5, Deadline: 3, Priority: 1}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []Workload{
		{ID: "neg", ComputeRequirement: -0.1, Priority: 1},
		{ID: "deadline", ComputeRequirement: 1, Deadline: -1, Priority: 1},
		{ID: "prio", ComputeRequirement: 1, Priority: 0},
	}
	for _, w := range cases {
		if err := w.Validate(); err == nil {
			t.Fatalf("expected error for %s", w.ID)
		}
	}
}

func TestCarbonSeriesHelpers(t *testing.T) {
	s := CarbonSeries{0.4, 0.2, 0.2, 0.5}
	if s.Horizon() != 4 {
		t.Fatalf("bad horizon %d", s.Horizon())
	}
	if got := s.MinSlot(0, 3); got != 1 {
		t.Fatalf("expected earliest minimum 1, got %d", got)
	}
	if got := s.MinSlot(2, 3); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := s.ClampSlot(10); got != 3 {
		t.Fatalf("expected clamp to 3, got %d", got)
	}
	if got := s.ClampSlot(-2); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (CarbonSeries{0.1, -0.2}).Validate(); err == nil {
		t.Fatalf("expected error for negative intensity")
	}
}

func TestRegionTableValidate(t *testing.T) {
	if err := (RegionTable{"eu": 280}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (RegionTable{"eu": -1}).Validate(); err == nil {
		t.Fatalf("expected error for negative intensity")
	}
}
