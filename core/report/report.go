// Package report aggregates optimization outcomes into a sustainability
// report with an indicative 0-100 score and compliance band.
package report

import "sort"

// Outcome is one optimized workload's contribution to the report.
type Outcome struct {
	CarbonSavedKg  float64 `json:"carbon_saved_kg"`
	CostSavedUSD   float64 `json:"cost_saved_usd"`
	SavingsPercent float64 `json:"savings_percent"`
	Region         string  `json:"region,omitempty"`
}

// Report summarizes environmental and economic impact over a set of
// optimized workloads.
type Report struct {
	Workloads           int      `json:"workloads_optimized"`
	TotalCarbonSavedKg  float64  `json:"total_carbon_saved_kg"`
	TotalCostSavedUSD   float64  `json:"total_cost_saved_usd"`
	AvgCarbonSavedKg    float64  `json:"avg_carbon_saved_kg"`
	AvgSavingsPercent   float64  `json:"avg_savings_percent"`
	EquivalentTrees     float64  `json:"equivalent_trees_planted"`
	EquivalentCars      float64  `json:"equivalent_cars_off_road"`
	Score               float64  `json:"score"`
	ComplianceStatus    string   `json:"compliance_status"`
	PerformanceTier     string   `json:"performance_tier"`
	PreferredRegions    []string `json:"preferred_regions,omitempty"`
	CertificationReady  bool     `json:"certification_ready"`
}

// Annual CO2 absorption/emission reference figures in kg.
const (
	kgPerTreeYear = 21.77
	kgPerCarYear  = 4600
)

// Generate builds the report. An empty outcome list yields a zero report
// with the lowest bands, never an error.
func Generate(outcomes []Outcome) Report {
	r := Report{Workloads: len(outcomes)}
	if len(outcomes) == 0 {
		r.ComplianceStatus = statusFor(0)
		r.PerformanceTier = tierFor(0)
		return r
	}

	regionCount := map[string]int{}
	for _, o := range outcomes {
		r.TotalCarbonSavedKg += o.CarbonSavedKg
		r.TotalCostSavedUSD += o.CostSavedUSD
		r.AvgSavingsPercent += o.SavingsPercent
		if o.Region != "" {
			regionCount[o.Region]++
		}
	}
	n := float64(len(outcomes))
	r.AvgCarbonSavedKg = r.TotalCarbonSavedKg / n
	r.AvgSavingsPercent /= n
	r.EquivalentTrees = r.TotalCarbonSavedKg / kgPerTreeYear
	r.EquivalentCars = r.TotalCarbonSavedKg / kgPerCarYear
	r.PreferredRegions = topRegions(regionCount, 3)

	r.Score = score(r.AvgSavingsPercent, r.TotalCarbonSavedKg, len(outcomes))
	r.ComplianceStatus = statusFor(r.Score)
	r.PerformanceTier = tierFor(r.Score)
	r.CertificationReady = r.Score >= 75
	return r
}

// score combines savings rate (up to 60), total impact (up to 20) and
// batch consistency (up to 20).
func score(avgPercent, totalKg float64, workloads int) float64 {
	s := avgPercent * 1.2
	if s > 60 {
		s = 60
	}
	impact := totalKg / 1000 * 2
	if impact > 20 {
		impact = 20
	}
	consistency := float64(workloads) / 50 * 10
	if consistency > 20 {
		consistency = 20
	}
	return s + impact + consistency
}

func statusFor(score float64) string {
	switch {
	case score >= 90:
		return "LEADERSHIP"
	case score >= 75:
		return "ADVANCED"
	case score >= 60:
		return "COMPLIANT"
	case score >= 40:
		return "DEVELOPING"
	default:
		return "BEGINNER"
	}
}

func tierFor(score float64) string {
	switch {
	case score >= 90:
		return "Industry Leader"
	case score >= 75:
		return "High Performer"
	case score >= 60:
		return "Compliant"
	default:
		return "Emerging"
	}
}

func topRegions(counts map[string]int, limit int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}
