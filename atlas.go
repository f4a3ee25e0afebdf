package stivalg

// GradientSample is the elevation and spatial partial derivatives of the
// terrain at a point. De and Dn are dimensionless (meters of rise per
// meter of run) along the easting and northing axes respectively.
type GradientSample struct {
	Elevation float64
	De, Dn    float64
}

// AbsSq returns the squared magnitude of the slope vector (De, Dn).
func (g GradientSample) AbsSq() float64 {
	return g.De*g.De + g.Dn*g.Dn
}

// Atlas is read-only access to a digital elevation model. Implementations
// must be pure functions of their Coord argument: two calls with the same
// coordinate return the same result.
type Atlas interface {
	// Gradient returns the elevation and slope at c. It returns ErrOutOfAtlas
	// if c has no data.
	Gradient(c Coord) (GradientSample, error)

	// Elevation returns the scalar elevation at c. It returns ErrOutOfAtlas
	// if c has no data. It is used by GPX export, not by the core planner.
	Elevation(c Coord) (float64, error)
}
