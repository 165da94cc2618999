package metrics

import (
	coremetrics "github.com/greenai-platform/scheduler/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	schedules *prometheus.CounterVec
	fallbacks prometheus.Counter
	carbon    *prometheus.CounterVec
	savings   prometheus.Histogram
	planTime  prometheus.Histogram
	regions   *prometheus.CounterVec
}

// NewPromSink registers planner metrics on the default Prometheus
// registerer. The HTTP server is started separately with StartPromServer.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	schedules := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_schedules_total",
		Help: "Total number of planned batches",
	}, []string{"policy"})
	fallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_fallback_assignments_total",
		Help: "Workloads assigned past their deadline",
	})
	carbon := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_carbon_cost_total",
		Help: "Cumulative carbon cost of planned schedules",
	}, []string{"policy"})
	savings := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_savings_percent",
		Help:    "Carbon savings versus the fastest baseline",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})
	planTime := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_planning_seconds",
		Help:    "Time spent planning one batch",
		Buckets: prometheus.DefBuckets,
	})
	regions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_region_choices_total",
		Help: "Region evaluations by selected region",
	}, []string{"region"})

	s := &PromSink{schedules: schedules, fallbacks: fallbacks, carbon: carbon, savings: savings, planTime: planTime, regions: regions}
	for _, c := range []prometheus.Collector{schedules, fallbacks, carbon, savings, planTime, regions} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}
	return s, nil
}

// RecordSchedule increments the planning counters for one batch.
func (s *PromSink) RecordSchedule(res coremetrics.ScheduleResult) error {
	s.schedules.WithLabelValues(res.Policy).Inc()
	s.fallbacks.Add(float64(res.FallbackCount))
	s.carbon.WithLabelValues(res.Policy).Add(res.TotalCarbon)
	s.savings.Observe(res.SavingsPercent)
	s.planTime.Observe(res.PlanningTime.Seconds())
	return nil
}

// RecordRegionChoice counts the selected region.
func (s *PromSink) RecordRegionChoice(ch coremetrics.RegionChoice) error {
	s.regions.WithLabelValues(ch.BestRegion).Inc()
	return nil
}
