package stivalg

import "math"

// Path is an ordered sequence of coordinates with at least two points. It
// is created by the shortest-path search, mutated only by relaxation, and
// read-only once handed back from Plan.
type Path struct {
	points []Coord
}

// NewPath returns a Path over points. It panics if fewer than two points
// are given.
func NewPath(points []Coord) Path {
	if len(points) < 2 {
		panic("stivalg: a path needs at least two points")
	}
	cp := make([]Coord, len(points))
	copy(cp, points)
	return Path{points: cp}
}

// Points returns a copy of the path's points.
func (p Path) Points() []Coord {
	cp := make([]Coord, len(p.points))
	copy(cp, p.points)
	return cp
}

// Len returns the number of points in the path.
func (p Path) Len() int {
	return len(p.points)
}

// At returns the i'th point.
func (p Path) At(i int) Coord {
	return p.points[i]
}

// First returns the path's first point.
func (p Path) First() Coord {
	return p.points[0]
}

// Last returns the path's last point.
func (p Path) Last() Coord {
	return p.points[len(p.points)-1]
}

// Length returns the total Euclidean length of the path in meters.
func (p Path) Length() float64 {
	var l float64
	for i := 0; i+1 < len(p.points); i++ {
		l += (Segment{p.points[i], p.points[i+1]}).Len()
	}
	return l
}

// Time returns the total estimated traversal time in seconds, or
// math.Inf(1) if any segment is impassable or out of atlas coverage.
func (p Path) Time(atlas Atlas) float64 {
	var t float64
	for i := 0; i+1 < len(p.points); i++ {
		dt, err := (Segment{p.points[i], p.points[i+1]}).Time(atlas)
		if err != nil {
			return math.Inf(1)
		}
		t += dt
	}
	return t
}

// Gain returns the total accumulated uphill elevation in meters.
func (p Path) Gain(atlas Atlas) float64 {
	var h float64
	for i := 0; i+1 < len(p.points); i++ {
		dh, err := (Segment{p.points[i], p.points[i+1]}).UphillGain(atlas)
		if err == nil {
			h += dh
		}
	}
	return h
}

// Descent returns the total accumulated downhill elevation in meters,
// computed by walking the path backwards and summing uphill gain the same
// way Gain does (original_source/src/path.rs's descent).
func (p Path) Descent(atlas Atlas) float64 {
	var h float64
	for i := len(p.points) - 1; i > 0; i-- {
		dh, err := (Segment{p.points[i], p.points[i-1]}).UphillGain(atlas)
		if err == nil {
			h += dh
		}
	}
	return h
}

// appendPath concatenates other onto base, dropping the duplicate join
// vertex when base is non-empty. It is used by the planner to stitch
// per-waypoint-pair sub-paths into the final track.
func appendPath(base []Coord, other []Coord) []Coord {
	if len(base) == 0 {
		return append([]Coord(nil), other...)
	}
	return append(base, other[1:]...)
}
