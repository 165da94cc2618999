package metrics

import "time"

// ScheduleResult is a per-batch planning event to be recorded.
type ScheduleResult struct {
	BatchID        string
	Policy         string
	Workloads      int
	FallbackCount  int
	TotalCarbon    float64
	BaselineCarbon float64
	SavingsPercent float64
	Horizon        int
	PlanningTime   time.Duration
	CompletedAt    time.Time
}

// RegionChoice captures one region evaluation.
type RegionChoice struct {
	BestRegion      string
	BaselineRegion  string
	SavingsAbsolute float64
	Regions         int
	Time            time.Time
}

// Sink records planner activity for observability purposes.
type Sink interface {
	RecordSchedule(res ScheduleResult) error
	RecordRegionChoice(ch RegionChoice) error
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordSchedule(ScheduleResult) error   { return nil }
func (NopSink) RecordRegionChoice(RegionChoice) error { return nil }
