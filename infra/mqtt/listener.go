package mqtt

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/greenai-platform/scheduler/core/model"
	"github.com/greenai-platform/scheduler/infra/logger"
)

// BatchRequest is the JSON payload expected on the request topic.
type BatchRequest struct {
	BatchID   string             `json:"batch_id"`
	Policy    string             `json:"policy"`
	Horizon   int                `json:"horizon"`
	Forecast  model.CarbonSeries `json:"carbon_forecast,omitempty"`
	Workloads []model.Workload   `json:"workloads"`
}

// ScheduleResult is the JSON payload published on the result topic.
type ScheduleResult struct {
	BatchID  string         `json:"batch_id"`
	Schedule model.Schedule `json:"schedule"`
	Error    string         `json:"error,omitempty"`
}

// BatchHandler processes one decoded batch request.
type BatchHandler func(req BatchRequest)

// Listener decodes batch requests and forwards them to the handler.
type Listener struct {
	client *Client
	log    logger.Logger
}

// NewListener subscribes to the configured request topic.
func NewListener(client *Client, handler BatchHandler) (*Listener, error) {
	l := &Listener{client: client, log: logger.New("mqtt-listener")}
	err := client.Subscribe(client.cfg.RequestTopic, func(topic string, payload []byte) {
		var req BatchRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			l.log.Errorf("decode batch request: %v", err)
			return
		}
		if req.BatchID == "" {
			req.BatchID = uuid.NewString()
		}
		l.log.Infof("batch %s received: %d workloads", req.BatchID, len(req.Workloads))
		handler(req)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", client.cfg.RequestTopic, err)
	}
	return l, nil
}

// PublishResult publishes a planned schedule (or its error) on the result
// topic.
func (l *Listener) PublishResult(res ScheduleResult) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return l.client.Publish(l.client.cfg.ResultTopic, payload)
}
