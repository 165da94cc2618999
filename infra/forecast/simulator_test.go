package forecast

import (
	"context"
	"reflect"
	"testing"
)

func TestForecastDeterministicForSeed(t *testing.T) {
	a, err := New(Config{Seed: 42}).Forecast(context.Background(), 24)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	b, err := New(Config{Seed: 42}).Forecast(context.Background(), 24)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different forecasts")
	}
}

func TestForecastBounds(t *testing.T) {
	series, err := New(Config{Seed: 7, NoiseStdDev: 0.5}).Forecast(context.Background(), 100)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if len(series) != 100 {
		t.Fatalf("expected 100 slots, got %d", len(series))
	}
	for i, v := range series {
		if v < minIntensity || v > maxIntensity {
			t.Fatalf("slot %d out of bounds: %f", i, v)
		}
	}
}

func TestForecastFollowsDailyShape(t *testing.T) {
	// With no noise the series is exactly the repeated daily pattern:
	// night slots stay below the afternoon peak.
	g := New(Config{})
	g.cfg.NoiseStdDev = 0
	series, err := g.Forecast(context.Background(), 48)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if series[2] >= series[14] {
		t.Fatalf("night slot %f should be below peak %f", series[2], series[14])
	}
	if series[3] != series[27] {
		t.Fatalf("pattern should repeat daily: %f vs %f", series[3], series[27])
	}
}

func TestForecastEmptyHorizon(t *testing.T) {
	series, err := New(Config{}).Forecast(context.Background(), 0)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if len(series) != 0 {
		t.Fatalf("expected empty series, got %d slots", len(series))
	}
}
