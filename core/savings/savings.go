// Package savings derives carbon savings figures from planner outputs and
// validates externally supplied forecasts against observed intensities.
package savings

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/greenai-platform/scheduler/core/model"
)

// Report quantifies the carbon saved by an optimized schedule relative to
// a baseline one.
type Report struct {
	BaselineCarbon  float64 `json:"baseline_carbon"`
	OptimizedCarbon float64 `json:"optimized_carbon"`
	SavingsAbsolute float64 `json:"savings_absolute"`
	SavingsPercent  float64 `json:"savings_percent"`
}

// Compare returns the savings of optimized versus baseline. A zero
// baseline cost reports 0% rather than failing, the zero-safe convention
// shared by the other calculators.
func Compare(baseline, optimized model.Schedule) Report {
	r := Report{
		BaselineCarbon:  baseline.TotalCarbon,
		OptimizedCarbon: optimized.TotalCarbon,
		SavingsAbsolute: baseline.TotalCarbon - optimized.TotalCarbon,
	}
	if baseline.TotalCarbon != 0 {
		r.SavingsPercent = r.SavingsAbsolute / baseline.TotalCarbon * 100
	}
	return r
}

// Accuracy summarizes how far forecast intensities landed from the
// observed ones.
type Accuracy struct {
	MAE     float64 `json:"mae"`
	MSE     float64 `json:"mse"`
	RMSE    float64 `json:"rmse"`
	MAPE    float64 `json:"mape"`
	Mean    float64 `json:"mean_observed"`
	StdDev  float64 `json:"stddev_observed"`
	Samples int     `json:"samples"`
}

// ForecastAccuracy computes error metrics between a forecast and the
// observed series. Slots with a zero observed value are excluded from
// MAPE to avoid dividing by zero.
func ForecastAccuracy(forecast, observed model.CarbonSeries) (Accuracy, error) {
	if len(forecast) != len(observed) {
		return Accuracy{}, fmt.Errorf("forecast and observed series must have the same length: %d != %d", len(forecast), len(observed))
	}
	if len(forecast) == 0 {
		return Accuracy{}, fmt.Errorf("no samples to compare")
	}

	var absSum, sqSum, pctSum float64
	pctN := 0
	for i := range forecast {
		diff := forecast[i] - observed[i]
		absSum += math.Abs(diff)
		sqSum += diff * diff
		if observed[i] != 0 {
			pctSum += math.Abs(diff / observed[i])
			pctN++
		}
	}

	n := float64(len(forecast))
	acc := Accuracy{
		MAE:     absSum / n,
		MSE:     sqSum / n,
		Mean:    stat.Mean(observed, nil),
		Samples: len(forecast),
	}
	if len(observed) > 1 {
		acc.StdDev = stat.StdDev(observed, nil)
	}
	acc.RMSE = math.Sqrt(acc.MSE)
	if pctN > 0 {
		acc.MAPE = pctSum / float64(pctN) * 100
	}
	return acc, nil
}
