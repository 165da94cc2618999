package forecast

import (
	"context"

	"github.com/greenai-platform/scheduler/core/model"
)

// Provider supplies carbon intensity forecasts. Implementations live in
// infra; the planner only consumes the already-computed series.
type Provider interface {
	// Forecast returns one intensity value per slot for the requested
	// horizon. The returned series is owned by the caller.
	Forecast(ctx context.Context, slots int) (model.CarbonSeries, error)
}

// Static wraps a fixed series, truncated or repeated to the requested
// horizon. Useful for tests and file-based planning.
type Static struct {
	Series model.CarbonSeries
}

// Forecast implements Provider.
func (s Static) Forecast(_ context.Context, slots int) (model.CarbonSeries, error) {
	if len(s.Series) == 0 || slots <= 0 {
		return model.CarbonSeries{}, nil
	}
	out := make(model.CarbonSeries, slots)
	for i := range out {
		out[i] = s.Series[i%len(s.Series)]
	}
	return out, nil
}
