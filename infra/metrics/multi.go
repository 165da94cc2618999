package metrics

import coremetrics "github.com/greenai-platform/scheduler/core/metrics"

// MultiSink fans planning records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSchedule forwards the record to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordSchedule(res coremetrics.ScheduleResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordSchedule(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordRegionChoice forwards the record to all sinks.
func (m *MultiSink) RecordRegionChoice(ch coremetrics.RegionChoice) error {
	for _, s := range m.Sinks {
		if err := s.RecordRegionChoice(ch); err != nil {
			return err
		}
	}
	return nil
}
