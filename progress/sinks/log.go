package sinks

import (
	"go.uber.org/zap"

	"github.com/webgrab/hooks/progress"
)

// LogSink emits a structured log line per fetch record. It is useful during
// development or audits where terminal output alone is not enough.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink wires a Zap logger to the sink interface.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger}
}

// Record logs the event using structured fields.
func (s *LogSink) Record(evt progress.Event) error {
	s.logger.Info("fetch record",
		zap.String("run_id", evt.RunUUID().String()),
		zap.Int64("seq", evt.Seq),
		zap.String("url", evt.URL),
		zap.Bool("from_css", evt.FromCSS),
		zap.Time("ts", evt.TS),
	)
	return nil
}

// Close implements the Sink interface; it performs no action.
func (s *LogSink) Close() error {
	return nil
}
