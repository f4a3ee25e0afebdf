package stivalg

// funcAtlas is a test double that derives elevation and gradient from pure
// functions of a coordinate.
type funcAtlas struct {
	elevation func(c Coord) float64
	gradient  func(c Coord) (de, dn float64)
}

func flatAtlas() *funcAtlas {
	return &funcAtlas{
		elevation: func(c Coord) float64 { return 0 },
		gradient:  func(c Coord) (float64, float64) { return 0, 0 },
	}
}

func slopeAtlas(de, dn float64) *funcAtlas {
	return &funcAtlas{
		elevation: func(c Coord) float64 { return de*c.E + dn*c.N },
		gradient:  func(c Coord) (float64, float64) { return de, dn },
	}
}

// cliffAtlas is flat except for a vertical strip [eMin,eMax) where the
// gradient magnitude along east is steepGrad.
func cliffAtlas(eMin, eMax, steepGrad float64) *funcAtlas {
	return &funcAtlas{
		elevation: func(c Coord) float64 {
			if c.E >= eMin && c.E < eMax {
				return steepGrad * (c.E - eMin)
			}
			return 0
		},
		gradient: func(c Coord) (float64, float64) {
			if c.E >= eMin && c.E < eMax {
				return steepGrad, 0
			}
			return 0, 0
		},
	}
}

func (a *funcAtlas) Elevation(c Coord) (float64, error) {
	return a.elevation(c), nil
}

func (a *funcAtlas) Gradient(c Coord) (GradientSample, error) {
	de, dn := a.gradient(c)
	return GradientSample{Elevation: a.elevation(c), De: de, Dn: dn}, nil
}
