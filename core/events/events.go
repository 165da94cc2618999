package events

import "github.com/greenai-platform/scheduler/core/model"

// BatchReceived is published when a workload batch request arrives.
type BatchReceived struct {
	BatchID   string
	Policy    string
	Workloads []model.Workload
}

// SchedulePublished is published after a batch was planned and its
// schedule handed to the transport.
type SchedulePublished struct {
	BatchID  string
	Schedule model.Schedule
}
