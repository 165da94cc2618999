// Package app wires the planner, transport and observability sinks into a
// runnable service.
package app

import (
	"context"
	"fmt"

	"github.com/greenai-platform/scheduler/config"
	coremetrics "github.com/greenai-platform/scheduler/core/metrics"
	"github.com/greenai-platform/scheduler/core/planner"
	"github.com/greenai-platform/scheduler/core/scheduler"
	infraforecast "github.com/greenai-platform/scheduler/infra/forecast"
	"github.com/greenai-platform/scheduler/infra/logger"
	"github.com/greenai-platform/scheduler/infra/metrics"
	"github.com/greenai-platform/scheduler/infra/mqtt"
	"github.com/greenai-platform/scheduler/internal/eventbus"
)

// Service consumes batch requests over MQTT and publishes schedules.
type Service struct {
	Planner *planner.Planner

	client      *mqtt.Client
	listener    *mqtt.Listener
	bus         eventbus.EventBus
	log         logger.Logger
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	client, err := mqtt.NewClient(cfg.MQTT)
	if err != nil {
		return nil, fmt.Errorf("mqtt client: %w", err)
	}

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket))
	}
	var sink coremetrics.Sink
	switch len(sinks) {
	case 0:
		sink = coremetrics.NopSink{}
	case 1:
		sink = sinks[0]
	default:
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New()
	provider := infraforecast.New(cfg.Forecast)
	pl := planner.New(provider, sink, bus, logg,
		scheduler.Policy(cfg.Scheduler.DefaultPolicy), cfg.Scheduler.HorizonSlots)

	return &Service{
		Planner:     pl,
		client:      client,
		bus:         bus,
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Run starts the service and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	listener, err := mqtt.NewListener(s.client, func(req mqtt.BatchRequest) {
		s.handleBatch(ctx, req)
	})
	if err != nil {
		return err
	}
	s.listener = listener
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	<-ctx.Done()
	return nil
}

func (s *Service) handleBatch(ctx context.Context, req mqtt.BatchRequest) {
	res, err := s.Planner.PlanBatch(ctx, planner.Request{
		BatchID:   req.BatchID,
		Policy:    req.Policy,
		Horizon:   req.Horizon,
		Forecast:  req.Forecast,
		Workloads: req.Workloads,
	})
	out := mqtt.ScheduleResult{BatchID: req.BatchID}
	if err != nil {
		s.log.Errorf("batch %s failed: %v", req.BatchID, err)
		out.Error = err.Error()
	} else {
		out.Schedule = res.Schedule
	}
	if err := s.listener.PublishResult(out); err != nil {
		s.log.Errorf("publish result %s: %v", req.BatchID, err)
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.client.Disconnect()
	s.bus.Close()
	return nil
}
