package progress

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/webgrab/hooks"
)

// Reporter implements hooks.FetchReporter. It owns the record counter for one
// crawl run: the counter starts at zero, increments exactly once per
// notification, and is never reset while the run lives. The counter is
// atomic so engines that dispatch fetches across workers stay correct.
//
// The opaque Handle and IRI fields of a notification are never inspected;
// only the URL and CSS flag travel into the events handed to sinks.
type Reporter struct {
	runID   [16]byte
	sinks   []Sink
	logger  *zap.Logger
	records atomic.Int64
}

// NewReporter builds a Reporter for one crawl run. A nil logger is replaced
// with a no-op logger; nil sinks are skipped at delivery time.
func NewReporter(runID uuid.UUID, logger *zap.Logger, sinks ...Sink) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{
		runID:  UUIDToBytes(runID),
		sinks:  append([]Sink(nil), sinks...),
		logger: logger,
	}
}

// OnFetched increments the run's record counter and delivers one Event to
// every sink in registration order. It never fails: sink errors are logged
// at warn and swallowed, since the engine's loop has no use for them.
func (r *Reporter) OnFetched(notice hooks.FetchNotice) {
	seq := r.records.Add(1)
	evt := Event{
		RunID:   r.runID,
		TS:      time.Now().UTC(),
		Seq:     seq,
		URL:     notice.URL,
		FromCSS: notice.FromCSS,
	}
	for _, sink := range r.sinks {
		if sink == nil {
			continue
		}
		if err := sink.Record(evt); err != nil {
			r.logger.Warn("progress sink record failed",
				zap.Error(err),
				zap.Int64("seq", seq),
				zap.String("url", notice.URL),
			)
		}
	}
}

// Records returns the number of notifications received so far.
func (r *Reporter) Records() int64 {
	return r.records.Load()
}

// Close closes every sink and returns their joined errors.
func (r *Reporter) Close() error {
	var errs []error
	for _, sink := range r.sinks {
		if sink == nil {
			continue
		}
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
