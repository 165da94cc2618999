// Package planner orchestrates one batch planning run: forecast
// acquisition, optimization, baseline comparison and observability.
package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/greenai-platform/scheduler/core/events"
	"github.com/greenai-platform/scheduler/core/forecast"
	corelogger "github.com/greenai-platform/scheduler/core/logger"
	coremetrics "github.com/greenai-platform/scheduler/core/metrics"
	"github.com/greenai-platform/scheduler/core/model"
	"github.com/greenai-platform/scheduler/core/savings"
	"github.com/greenai-platform/scheduler/core/scheduler"
	"github.com/greenai-platform/scheduler/internal/eventbus"
)

// Request describes one batch to plan. A nil Forecast defers to the
// provider for Horizon slots.
type Request struct {
	BatchID   string
	Policy    string
	Horizon   int
	Forecast  model.CarbonSeries
	Workloads []model.Workload
}

// Result couples the schedule with its baseline comparison.
type Result struct {
	BatchID  string
	Schedule model.Schedule
	Savings  savings.Report
}

// Planner plans workload batches. Construct with New; the zero value is
// not usable.
type Planner struct {
	provider      forecast.Provider
	sink          coremetrics.Sink
	bus           eventbus.EventBus
	log           corelogger.Logger
	defaultPolicy scheduler.Policy
	horizon       int
}

// New creates a Planner. Sink and bus may be nil; provider is required
// unless every request carries its own forecast.
func New(provider forecast.Provider, sink coremetrics.Sink, bus eventbus.EventBus, log corelogger.Logger, defaultPolicy scheduler.Policy, horizon int) *Planner {
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return &Planner{
		provider:      provider,
		sink:          sink,
		bus:           bus,
		log:           log,
		defaultPolicy: defaultPolicy,
		horizon:       horizon,
	}
}

// PlanBatch plans one batch and reports the outcome to the sink and bus.
func (p *Planner) PlanBatch(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	policy := p.defaultPolicy
	if req.Policy != "" {
		parsed, err := scheduler.ParsePolicy(req.Policy)
		if err != nil {
			return Result{}, err
		}
		policy = parsed
	}

	carbon := req.Forecast
	if len(carbon) == 0 {
		if p.provider == nil {
			return Result{}, scheduler.ErrEmptyForecast
		}
		horizon := req.Horizon
		if horizon <= 0 {
			horizon = p.horizon
		}
		series, err := p.provider.Forecast(ctx, horizon)
		if err != nil {
			return Result{}, fmt.Errorf("forecast: %w", err)
		}
		carbon = series
	}

	if p.bus != nil {
		p.bus.Publish(events.BatchReceived{BatchID: req.BatchID, Policy: string(policy), Workloads: req.Workloads})
	}

	sched, err := scheduler.Optimize(req.Workloads, carbon, policy)
	if err != nil {
		return Result{}, err
	}
	baseline, err := scheduler.Optimize(req.Workloads, carbon, scheduler.PolicyFastest)
	if err != nil {
		return Result{}, err
	}
	rep := savings.Compare(baseline, sched)

	fallbacks := 0
	for _, e := range sched.Entries {
		if e.Method == model.MethodFallback {
			fallbacks++
		}
	}
	if err := p.sink.RecordSchedule(coremetrics.ScheduleResult{
		BatchID:        req.BatchID,
		Policy:         sched.Policy,
		Workloads:      len(req.Workloads),
		FallbackCount:  fallbacks,
		TotalCarbon:    sched.TotalCarbon,
		BaselineCarbon: baseline.TotalCarbon,
		SavingsPercent: rep.SavingsPercent,
		Horizon:        carbon.Horizon(),
		PlanningTime:   time.Since(start),
		CompletedAt:    time.Now(),
	}); err != nil && p.log != nil {
		p.log.Errorf("record schedule: %v", err)
	}

	if p.bus != nil {
		p.bus.Publish(events.SchedulePublished{BatchID: req.BatchID, Schedule: sched})
	}
	if p.log != nil {
		p.log.Infof("batch %s planned: %d workloads, policy=%s, carbon=%.3f, savings=%.1f%%",
			req.BatchID, len(sched.Entries), sched.Policy, sched.TotalCarbon, rep.SavingsPercent)
	}
	return Result{BatchID: req.BatchID, Schedule: sched, Savings: rep}, nil
}
