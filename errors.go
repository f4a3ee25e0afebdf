package stivalg

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the planner and its collaborators.
var (
	// ErrTooFewWaypoints indicates Params.Points has fewer than two points.
	ErrTooFewWaypoints = errors.New("stivalg: at least two waypoints are required")

	// ErrOutOfAtlas indicates a coordinate lookup fell outside the atlas's
	// coverage. The planner treats this as a programming error: callers
	// must ensure graphs stay within the atlas's extent.
	ErrOutOfAtlas = errors.New("stivalg: coordinate has no atlas coverage")

	// errImpassable marks a segment that crosses terrain steeper than the
	// walkability limit (|gradient| > 1). It is absorbed internally by the
	// graph builder and the relaxer; it never escapes Plan.
	errImpassable = errors.New("stivalg: segment crosses ungradeable terrain")

	// errNoPath is returned by the internal shortest-path search when no
	// route connects the graph's start and end nodes. The planner turns
	// this into an *UnreachableError carrying the failing pair index.
	errNoPath = errors.New("stivalg: no path between graph endpoints")
)

// UnreachableError reports that no path could be found between the
// waypoints at PairIndex and PairIndex+1 in Params.Points.
type UnreachableError struct {
	PairIndex int
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("stivalg: no path between waypoint %d and waypoint %d", e.PairIndex, e.PairIndex+1)
}
