package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg)

	ObserveParse("test", true)
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	if len(families) == 0 {
		t.Errorf("Gather() returned no metric families")
	}
}

func TestObserveParse(t *testing.T) {
	matched := ParseOutcomes.WithLabelValues("unit", ResultMatched)
	unmatched := ParseOutcomes.WithLabelValues("unit", ResultUnmatched)
	beforeMatched := testutil.ToFloat64(matched)
	beforeUnmatched := testutil.ToFloat64(unmatched)

	ObserveParse("unit", true)
	ObserveParse("unit", false)
	ObserveParse("unit", false)

	if got := testutil.ToFloat64(matched) - beforeMatched; got != 1 {
		t.Errorf("matched delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(unmatched) - beforeUnmatched; got != 2 {
		t.Errorf("unmatched delta = %v, want 2", got)
	}
}
