package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestInitIsIdempotent ensures repeated Init calls do not re-register
// collectors against the default registry.
func TestInitIsIdempotent(t *testing.T) {
	Init()
	Init()
	if admissionDecisionsTotal == nil {
		t.Fatal("expected admission counter to be initialized")
	}
}

// TestObserveAdmission checks the per-outcome counter advances.
func TestObserveAdmission(t *testing.T) {
	Init()
	before := testutil.ToFloat64(admissionDecisionsTotal.WithLabelValues(OutcomeVetoed))
	ObserveAdmission(OutcomeVetoed)
	ObserveAdmission(OutcomeVetoed)
	after := testutil.ToFloat64(admissionDecisionsTotal.WithLabelValues(OutcomeVetoed))
	if after-before != 2 {
		t.Fatalf("expected counter to advance by 2, got %v", after-before)
	}
}

// TestHandler confirms the metrics endpoint handler is constructed.
func TestHandler(t *testing.T) {
	if Handler() == nil {
		t.Fatal("expected non-nil handler")
	}
}
