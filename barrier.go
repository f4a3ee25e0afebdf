package stivalg

import "math"

// Barrier is an ordered polyline obstacle of at least two points. It is
// immutable after construction.
type Barrier struct {
	points []Coord
}

// NewBarrier builds a Barrier from points. It panics if fewer than two
// points are given: callers (ParamsStore, the CLI) are responsible for
// rejecting malformed input before construction, per spec.md §3.
func NewBarrier(points []Coord) Barrier {
	if len(points) < 2 {
		panic("stivalg: a barrier needs at least two points")
	}
	cp := make([]Coord, len(points))
	copy(cp, points)
	return Barrier{points: cp}
}

// NewBarrierFromPoints builds a Barrier from a complete point slice known
// up front, the points-in-hand counterpart to BarrierBuilder's incremental
// one. It is exactly NewBarrier, named to match the construction path a
// caller is using (original_source/src/barrier.rs's from_vec).
func NewBarrierFromPoints(points []Coord) Barrier {
	return NewBarrier(points)
}

// BarrierBuilder accumulates a barrier's points one at a time before they
// are frozen into an immutable Barrier, mirroring
// original_source/src/barrier.rs's add_point/update_point (there, points
// are added as the user clicks on the map canvas; here, the CLI's
// barrier-from-gpx helper adds one point per track point).
type BarrierBuilder struct {
	points []Coord
}

// NewBarrierBuilder returns an empty builder.
func NewBarrierBuilder() *BarrierBuilder {
	return &BarrierBuilder{}
}

// AddPoint appends p to the barrier under construction.
func (bb *BarrierBuilder) AddPoint(p Coord) {
	bb.points = append(bb.points, p)
}

// UpdatePoint replaces the point at index i. It panics if i is out of
// range, matching the Rust original's direct slice indexing.
func (bb *BarrierBuilder) UpdatePoint(i int, p Coord) {
	bb.points[i] = p
}

// Len reports how many points have been added so far.
func (bb *BarrierBuilder) Len() int {
	return len(bb.points)
}

// Build freezes the accumulated points into an immutable Barrier. Like
// NewBarrier, it panics if fewer than two points were added.
func (bb *BarrierBuilder) Build() Barrier {
	return NewBarrier(bb.points)
}

// Points returns a copy of the barrier's points.
func (b Barrier) Points() []Coord {
	cp := make([]Coord, len(b.points))
	copy(cp, b.points)
	return cp
}

// Len returns the number of points in the barrier.
func (b Barrier) Len() int {
	return len(b.points)
}

func triangleArea(a, b, c Coord) float64 {
	return (b.E-a.E)*(c.N-a.N) - (c.E-a.E)*(b.N-a.N)
}

// crossesLine reports whether segment (b1,b2) strictly crosses the
// infinite line through a1,a2: b1 and b2 must lie on strictly opposite
// sides.
func crossesLine(a1, a2, b1, b2 Coord) bool {
	areaB1 := triangleArea(a1, a2, b1)
	areaB2 := triangleArea(a1, a2, b2)
	return (areaB1 < 0 && areaB2 > 0) || (areaB1 > 0 && areaB2 < 0)
}

// IsCrossing reports whether segment (p1,p2) strictly crosses any edge of
// the barrier. Collinear or touching segments are not a crossing.
func (b Barrier) IsCrossing(p1, p2 Coord) bool {
	for i := 0; i < len(b.points)-1; i++ {
		a1, a2 := b.points[i], b.points[i+1]
		if crossesLine(a1, a2, p1, p2) && crossesLine(p1, p2, a1, a2) {
			return true
		}
	}
	return false
}

// distanceToSegmentSq returns the squared distance from p to the edge
// (p1,p2), clamping the projection parameter to [0,1].
func distanceToSegmentSq(p1, p2, p Coord) float64 {
	d1 := p.Sub(p1)
	d2 := p2.Sub(p1)

	absSq := d2.LenSq()
	param := -1.0
	if absSq != 0 {
		param = d1.Dot(d2) / absSq
	}

	var nearest Coord
	switch {
	case param < 0:
		nearest = p1
	case param > 1:
		nearest = p2
	default:
		nearest = p1.Add(d2.Scale(param))
	}
	return p.Sub(nearest).LenSq()
}

// DistanceSq returns the squared Euclidean distance from p to the closest
// point on the barrier's polyline.
func (b Barrier) DistanceSq(p Coord) float64 {
	best := math.Inf(1)
	for i := 0; i < len(b.points)-1; i++ {
		if d := distanceToSegmentSq(b.points[i], b.points[i+1], p); d < best {
			best = d
		}
	}
	return best
}

