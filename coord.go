package stivalg

import "math"

// Coord is a planar point (e, n) in a projected, meter-based coordinate
// system (easting, northing).
type Coord struct {
	E float64 `json:"e"`
	N float64 `json:"n"`
}

// Add returns c+other.
func (c Coord) Add(other Coord) Coord {
	return Coord{c.E + other.E, c.N + other.N}
}

// Sub returns c-other.
func (c Coord) Sub(other Coord) Coord {
	return Coord{c.E - other.E, c.N - other.N}
}

// Scale returns c scaled by f.
func (c Coord) Scale(f float64) Coord {
	return Coord{c.E * f, c.N * f}
}

// Dot returns the dot product of c and other.
func (c Coord) Dot(other Coord) float64 {
	return c.E*other.E + c.N*other.N
}

// LenSq returns the squared Euclidean norm of c.
func (c Coord) LenSq() float64 {
	return c.E*c.E + c.N*c.N
}

// Len returns the Euclidean norm of c.
func (c Coord) Len() float64 {
	return math.Sqrt(c.LenSq())
}

// Dist returns the Euclidean distance between c and other.
func (c Coord) Dist(other Coord) float64 {
	return c.Sub(other).Len()
}

// Mid returns the midpoint of c and other.
func (c Coord) Mid(other Coord) Coord {
	return c.Add(other).Scale(0.5)
}

// Normalize returns c scaled to unit length. The zero vector is returned
// unchanged.
func (c Coord) Normalize() Coord {
	l := c.Len()
	if l == 0 {
		return c
	}
	return c.Scale(1 / l)
}

// Equal reports whether c and other are exactly equal.
func (c Coord) Equal(other Coord) bool {
	return c.E == other.E && c.N == other.N
}
