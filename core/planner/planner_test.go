package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/greenai-platform/scheduler/core/events"
	"github.com/greenai-platform/scheduler/core/forecast"
	coremetrics "github.com/greenai-platform/scheduler/core/metrics"
	"github.com/greenai-platform/scheduler/core/model"
	"github.com/greenai-platform/scheduler/core/scheduler"
	"github.com/greenai-platform/scheduler/internal/eventbus"
)

type captureSink struct {
	schedules []coremetrics.ScheduleResult
}

func (c *captureSink) RecordSchedule(res coremetrics.ScheduleResult) error {
	c.schedules = append(c.schedules, res)
	return nil
}

func (c *captureSink) RecordRegionChoice(coremetrics.RegionChoice) error { return nil }

func testWorkloads() []model.Workload {
	return []model.Workload{
		{ID: "a", Priority: 1, Deadline: 5, ComputeRequirement: 1},
		{ID: "b", Priority: 2, Deadline: 3, ComputeRequirement: 2},
	}
}

func TestPlanBatchRecordsMetricsAndEvents(t *testing.T) {
	sink := &captureSink{}
	bus := eventbus.New()
	sub := bus.Subscribe()
	provider := forecast.Static{Series: model.CarbonSeries{0.3, 0.2, 0.1, 0.1, 0.1, 0.2}}
	p := New(provider, sink, bus, nil, scheduler.PolicyCarbonAware, 6)

	res, err := p.PlanBatch(context.Background(), Request{BatchID: "b1", Workloads: testWorkloads()})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(res.Schedule.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(res.Schedule.Entries))
	}
	if res.Savings.SavingsPercent <= 0 {
		t.Fatalf("expected positive savings, got %f", res.Savings.SavingsPercent)
	}
	if len(sink.schedules) != 1 {
		t.Fatalf("expected one metrics record, got %d", len(sink.schedules))
	}
	rec := sink.schedules[0]
	if rec.BatchID != "b1" || rec.Workloads != 2 || rec.Horizon != 6 {
		t.Fatalf("bad record: %+v", rec)
	}

	// BatchReceived then SchedulePublished.
	ev := <-sub
	if _, ok := ev.(events.BatchReceived); !ok {
		t.Fatalf("expected BatchReceived, got %T", ev)
	}
	ev = <-sub
	pub, ok := ev.(events.SchedulePublished)
	if !ok {
		t.Fatalf("expected SchedulePublished, got %T", ev)
	}
	if pub.BatchID != "b1" {
		t.Fatalf("bad event batch id %s", pub.BatchID)
	}
}

func TestPlanBatchUsesRequestForecast(t *testing.T) {
	p := New(nil, nil, nil, nil, scheduler.PolicyCarbonAware, 24)
	res, err := p.PlanBatch(context.Background(), Request{
		BatchID:   "b2",
		Forecast:  model.CarbonSeries{0.9, 0.1},
		Workloads: []model.Workload{{ID: "w", Priority: 1, Deadline: 1, ComputeRequirement: 1}},
	})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if res.Schedule.Entries[0].Slot != 1 {
		t.Fatalf("expected slot 1, got %d", res.Schedule.Entries[0].Slot)
	}
}

func TestPlanBatchNoProviderNoForecast(t *testing.T) {
	p := New(nil, nil, nil, nil, scheduler.PolicyCarbonAware, 24)
	_, err := p.PlanBatch(context.Background(), Request{BatchID: "b3"})
	if !errors.Is(err, scheduler.ErrEmptyForecast) {
		t.Fatalf("expected ErrEmptyForecast, got %v", err)
	}
}

func TestPlanBatchRejectsUnknownPolicy(t *testing.T) {
	provider := forecast.Static{Series: model.CarbonSeries{0.5}}
	p := New(provider, nil, nil, nil, scheduler.PolicyCarbonAware, 1)
	_, err := p.PlanBatch(context.Background(), Request{BatchID: "b4", Policy: "quantum"})
	if !errors.Is(err, scheduler.ErrInvalidPolicy) {
		t.Fatalf("expected ErrInvalidPolicy, got %v", err)
	}
}
