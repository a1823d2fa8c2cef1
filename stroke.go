package handtrace

import "github.com/oklog/ulid/v2"

// Stroke is one completed touch path archived to a hand's stroke log.
type Stroke struct {
	// ID is a ULID assigned when the stroke is archived. ULIDs order by
	// creation time, so sorting IDs reproduces archive order.
	ID string

	// Hand is the recording hand captured at pointer-down. A hand toggle
	// mid-stroke does not move the stroke to the other hand.
	Hand Hand

	// Points is the full pointer path in chronological order, starting
	// with the pointer-down position. An archived stroke always has at
	// least two points; single-point taps are discarded, never archived.
	Points []Point
}

// newStrokeID returns a fresh ULID string.
func newStrokeID() string {
	return ulid.Make().String()
}
