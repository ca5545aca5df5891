package progress

// Sink consumes progress events. Record is invoked synchronously on the
// engine's goroutine once per event, in sequence order; implementations must
// be cheap and must not block. Sinks may additionally be invoked from
// multiple goroutines when the engine dispatches fetches concurrently, so
// implementations guard any writer they share.
type Sink interface {
	Record(evt Event) error
	Close() error
}
