package sinks

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/webgrab/hooks/progress"
)

// PrometheusSink exports fetch-progress metrics. It owns the collectors for
// record and URL counts so a grab can be watched from a scrape endpoint as
// well as the terminal.
type PrometheusSink struct {
	fetchRecords prometheus.Counter
	urlsDone     prometheus.Counter
	cssRecords   prometheus.Counter
}

// NewPrometheusSink registers the collectors against the provided registry.
// A nil registry falls back to prometheus.DefaultRegisterer.
func NewPrometheusSink(reg prometheus.Registerer) (*PrometheusSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PrometheusSink{
		fetchRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "grab_fetch_records_total",
			Help: "Total completed-fetch records reported by the engine.",
		}),
		urlsDone: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "grab_urls_downloaded_total",
			Help: "URLs fully downloaded (request and response record pairs).",
		}),
		cssRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "grab_css_records_total",
			Help: "Fetch records for resources discovered inside CSS.",
		}),
	}
	for _, collector := range []prometheus.Collector{
		s.fetchRecords,
		s.urlsDone,
		s.cssRecords,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("register progress collector: %w", err)
		}
	}
	return s, nil
}

// Record updates the collectors for one event. It is safe for concurrent use
// by multiple goroutines.
func (s *PrometheusSink) Record(evt progress.Event) error {
	s.fetchRecords.Inc()
	if evt.FromCSS {
		s.cssRecords.Inc()
	}
	if evt.Seq%RecordsPerURL == 0 {
		s.urlsDone.Inc()
	}
	return nil
}

// Close implements the Sink interface; it performs no action.
func (s *PrometheusSink) Close() error {
	return nil
}
