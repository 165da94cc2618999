package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/greenai-platform/scheduler/core/metrics"
	"github.com/greenai-platform/scheduler/infra/logger"
)

// InfluxSink writes planning events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.Sink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordSchedule writes one planned batch as a line protocol point.
func (s *InfluxSink) RecordSchedule(res coremetrics.ScheduleResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("schedule_event").
		AddTag("batch_id", res.BatchID).
		AddTag("policy", res.Policy).
		AddTag("component", "planner").
		AddField("workloads", res.Workloads).
		AddField("fallbacks", res.FallbackCount).
		AddField("total_carbon", round3(res.TotalCarbon)).
		AddField("baseline_carbon", round3(res.BaselineCarbon)).
		AddField("savings_percent", round3(res.SavingsPercent)).
		AddField("horizon", res.Horizon).
		AddField("planning_ms", res.PlanningTime.Milliseconds()).
		SetTime(res.CompletedAt)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordRegionChoice writes one region evaluation.
func (s *InfluxSink) RecordRegionChoice(ch coremetrics.RegionChoice) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("region_choice").
		AddTag("best_region", ch.BestRegion).
		AddTag("baseline_region", ch.BaselineRegion).
		AddTag("component", "region-selector").
		AddField("savings_absolute", round3(ch.SavingsAbsolute)).
		AddField("regions", ch.Regions).
		SetTime(ch.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
