package report

import (
	"math"
	"testing"
)

func TestGenerateEmpty(t *testing.T) {
	r := Generate(nil)
	if r.Workloads != 0 || r.Score != 0 {
		t.Fatalf("empty report should be zero: %+v", r)
	}
	if r.ComplianceStatus != "BEGINNER" {
		t.Fatalf("expected BEGINNER, got %s", r.ComplianceStatus)
	}
}

func TestGenerateTotals(t *testing.T) {
	outcomes := []Outcome{
		{CarbonSavedKg: 100, CostSavedUSD: 10, SavingsPercent: 40, Region: "eu-west-1"},
		{CarbonSavedKg: 50, CostSavedUSD: 5, SavingsPercent: 20, Region: "eu-west-1"},
		{CarbonSavedKg: 30, CostSavedUSD: 2, SavingsPercent: 30, Region: "us-west-2"},
	}
	r := Generate(outcomes)
	if r.Workloads != 3 {
		t.Fatalf("expected 3 workloads, got %d", r.Workloads)
	}
	if r.TotalCarbonSavedKg != 180 || r.TotalCostSavedUSD != 17 {
		t.Fatalf("bad totals: %+v", r)
	}
	if math.Abs(r.AvgSavingsPercent-30) > 1e-9 {
		t.Fatalf("expected avg 30%%, got %f", r.AvgSavingsPercent)
	}
	if math.Abs(r.EquivalentTrees-180/21.77) > 1e-9 {
		t.Fatalf("bad tree equivalence: %f", r.EquivalentTrees)
	}
	if len(r.PreferredRegions) == 0 || r.PreferredRegions[0] != "eu-west-1" {
		t.Fatalf("expected eu-west-1 preferred, got %v", r.PreferredRegions)
	}
}

func TestScoreBandsMonotonic(t *testing.T) {
	low := Generate([]Outcome{{SavingsPercent: 5}})
	high := Generate([]Outcome{
		{CarbonSavedKg: 20000, SavingsPercent: 50},
		{CarbonSavedKg: 20000, SavingsPercent: 50},
	})
	if low.Score >= high.Score {
		t.Fatalf("expected higher score for better outcomes: %f vs %f", low.Score, high.Score)
	}
	if high.ComplianceStatus != "ADVANCED" && high.ComplianceStatus != "LEADERSHIP" {
		t.Fatalf("unexpected status %s for score %f", high.ComplianceStatus, high.Score)
	}
}
