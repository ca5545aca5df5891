package progress

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Event captures a single completed-fetch record delivered to sinks.
type Event struct {
	// RunID identifies the crawl run using the 16-byte UUID form.
	RunID [16]byte
	// TS is the UTC timestamp recorded by the Reporter.
	TS time.Time
	// Seq is the value of the run's record counter after this event, >= 1.
	Seq int64
	// URL is the fetched URL as reported by the engine.
	URL string
	// FromCSS reports whether the resource was discovered inside CSS content.
	FromCSS bool
}

// Validate performs coarse validation on Event payloads.
func (e Event) Validate() error {
	if e.RunID == [16]byte{} {
		return errors.New("run id is required")
	}
	if e.TS.IsZero() {
		return errors.New("timestamp is required")
	}
	if e.Seq < 1 {
		return errors.New("sequence must be >= 1")
	}
	return nil
}

// RunUUID converts the binary run ID to uuid.UUID.
func (e Event) RunUUID() uuid.UUID {
	return uuid.UUID(e.RunID)
}

// UUIDToBytes encodes a uuid.UUID into the Event form.
func UUIDToBytes(id uuid.UUID) [16]byte {
	var dest [16]byte
	copy(dest[:], id[:])
	return dest
}
