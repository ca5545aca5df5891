package progress

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/webgrab/hooks"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	closed bool
	err    error
}

func (s *recordingSink) Record(evt Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
	return s.err
}

func (s *recordingSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *recordingSink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

// TestReporterCountsEveryNotification verifies N notifications leave the
// counter at exactly N with sequence values 1..N.
func TestReporterCountsEveryNotification(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	reporter := NewReporter(uuid.New(), zap.NewNop(), sink)
	for i := 0; i < 5; i++ {
		reporter.OnFetched(hooks.FetchNotice{URL: "http://x.com/page"})
	}

	require.EqualValues(t, 5, reporter.Records())
	events := sink.Events()
	require.Len(t, events, 5)
	for i, evt := range events {
		require.EqualValues(t, i+1, evt.Seq)
		require.NoError(t, evt.Validate())
	}
}

// TestReporterIgnoresOpaqueFields confirms the engine-owned handle and IRI
// values never leak into events.
func TestReporterIgnoresOpaqueFields(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	reporter := NewReporter(uuid.New(), zap.NewNop(), sink)
	reporter.OnFetched(hooks.FetchNotice{
		Handle:  struct{ fd int }{fd: 7},
		URL:     "http://x.com/styles.css",
		FromCSS: true,
		IRI:     "opaque",
	})

	events := sink.Events()
	require.Len(t, events, 1)
	require.Equal(t, "http://x.com/styles.css", events[0].URL)
	require.True(t, events[0].FromCSS)
}

// TestReporterSwallowsSinkErrors ensures a failing sink never stops delivery
// to the sinks after it.
func TestReporterSwallowsSinkErrors(t *testing.T) {
	t.Parallel()

	failing := &recordingSink{err: errors.New("status stream closed")}
	healthy := &recordingSink{}
	reporter := NewReporter(uuid.New(), zap.NewNop(), failing, healthy)

	reporter.OnFetched(hooks.FetchNotice{URL: "http://x.com/page"})
	reporter.OnFetched(hooks.FetchNotice{URL: "http://x.com/other"})

	require.Len(t, failing.Events(), 2)
	require.Len(t, healthy.Events(), 2)
	require.EqualValues(t, 2, reporter.Records())
}

// TestReporterConcurrentNotifications exercises the atomic counter under a
// multi-worker engine.
func TestReporterConcurrentNotifications(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	reporter := NewReporter(uuid.New(), zap.NewNop(), sink)

	const workers = 8
	const perWorker = 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				reporter.OnFetched(hooks.FetchNotice{URL: "http://x.com/page"})
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, workers*perWorker, reporter.Records())
	require.Len(t, sink.Events(), workers*perWorker)
}

// TestReporterClose verifies Close reaches every sink.
func TestReporterClose(t *testing.T) {
	t.Parallel()

	first := &recordingSink{}
	second := &recordingSink{}
	reporter := NewReporter(uuid.New(), nil, first, nil, second)
	require.NoError(t, reporter.Close())
	require.True(t, first.closed)
	require.True(t, second.closed)
}
