// Package metrics exposes Prometheus collectors for the admission layer.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Admission outcomes recorded per decision.
const (
	OutcomeAdmitted     = "admitted"
	OutcomeVetoed       = "vetoed"
	OutcomeHostRejected = "host_rejected"
)

var (
	admissionDecisionsTotal *prometheus.CounterVec

	once sync.Once
)

// Init initializes the Prometheus collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		admissionDecisionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grab_admission_decisions_total",
				Help: "Total link admission decisions, labeled by outcome.",
			},
			[]string{"outcome"},
		)
	})
}

// ObserveAdmission increments the decision counter for the given outcome.
func ObserveAdmission(outcome string) {
	Init()
	admissionDecisionsTotal.WithLabelValues(outcome).Inc()
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
