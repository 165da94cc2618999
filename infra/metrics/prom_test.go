package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/greenai-platform/scheduler/core/metrics"
)

func TestPromSinkRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	err = sink.RecordSchedule(coremetrics.ScheduleResult{
		BatchID:        "b1",
		Policy:         "carbon_aware",
		Workloads:      3,
		FallbackCount:  1,
		TotalCarbon:    1.5,
		SavingsPercent: 25,
		PlanningTime:   10 * time.Millisecond,
		CompletedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("record schedule: %v", err)
	}
	if err := sink.RecordRegionChoice(coremetrics.RegionChoice{BestRegion: "eu-west-1", Regions: 3, Time: time.Now()}); err != nil {
		t.Fatalf("record region: %v", err)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := map[string]bool{}
	for _, mf := range mfs {
		found[mf.GetName()] = true
	}
	for _, name := range []string{
		"planner_schedules_total",
		"planner_fallback_assignments_total",
		"planner_carbon_cost_total",
		"planner_savings_percent",
		"planner_planning_seconds",
		"planner_region_choices_total",
	} {
		if !found[name] {
			t.Fatalf("metric %s not registered", name)
		}
	}
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("second registration should tolerate AlreadyRegisteredError: %v", err)
	}
}
