package model

import "fmt"

// CarbonSeries is an ordered, zero-indexed carbon intensity forecast, one
// value per discrete time slot. It is read-only for the duration of a
// planning call.
type CarbonSeries []float64

// Horizon returns the number of slots covered by the series.
func (c CarbonSeries) Horizon() int { return len(c) }

// ClampSlot bounds idx to the valid index range of the series.
func (c CarbonSeries) ClampSlot(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx > len(c)-1 {
		return len(c) - 1
	}
	return idx
}

// MinSlot returns the index of the minimum intensity in [lo, hi],
// breaking ties toward the earliest slot. Bounds must be valid.
func (c CarbonSeries) MinSlot(lo, hi int) int {
	best := lo
	for i := lo + 1; i <= hi; i++ {
		if c[i] < c[best] {
			best = i
		}
	}
	return best
}

// Validate checks that every intensity value is non-negative.
func (c CarbonSeries) Validate() error {
	for i, v := range c {
		if v < 0 {
			return fmt.Errorf("carbon series: negative intensity %.4f at slot %d", v, i)
		}
	}
	return nil
}
