package simulator

import "testing"

func TestGenerateBatch(t *testing.T) {
	batch := GenerateBatch(BatchConfig{Count: 50, MaxDeadline: 23, Seed: 1})
	if len(batch) != 50 {
		t.Fatalf("expected 50 workloads, got %d", len(batch))
	}
	seen := make(map[string]bool, len(batch))
	for _, w := range batch {
		if err := w.Validate(); err != nil {
			t.Fatalf("invalid workload: %v", err)
		}
		if w.ComputeRequirement < 0.1 || w.ComputeRequirement > 1.0 {
			t.Fatalf("demand out of range: %f", w.ComputeRequirement)
		}
		if w.Deadline < 4 || w.Deadline > 23 {
			t.Fatalf("deadline out of range: %d", w.Deadline)
		}
		if w.Priority < 1 || w.Priority > 3 {
			t.Fatalf("priority out of range: %d", w.Priority)
		}
		if seen[w.ID] {
			t.Fatalf("duplicate workload id %s", w.ID)
		}
		seen[w.ID] = true
	}
}

func TestGenerateBatchDefaults(t *testing.T) {
	batch := GenerateBatch(BatchConfig{})
	if len(batch) != 10 {
		t.Fatalf("expected default count 10, got %d", len(batch))
	}
}
