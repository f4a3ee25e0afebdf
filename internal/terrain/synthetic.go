package terrain

import "github.com/arl/stivalg"

// Flat returns a Grid of constant elevation, spanning [-halfSpan,halfSpan]
// on both axes at cell size cs, centred on the origin. Every segment drawn
// over it costs the cost model's flat-ground rate.
func Flat(halfSpan, cs float64) *Grid {
	n := int32(2*halfSpan/cs) + 1
	origin := stivalg.Coord{E: -halfSpan, N: -halfSpan}
	g := NewGrid(n, n, cs, origin)
	return g
}

// ConstantSlope returns a Grid whose elevation rises linearly along the
// east axis at the given grade (rise over run, e.g. 0.3 for 30%), flat
// along north. Useful for exercising the cost model's uphill/downhill
// knots deterministically.
func ConstantSlope(halfSpan, cs, grade float64) *Grid {
	g := Flat(halfSpan, cs)
	for y := int32(0); y < g.Height; y++ {
		for x := int32(0); x < g.Width; x++ {
			e := g.Origin.E + float64(x)*cs
			g.Set(x, y, e*grade)
		}
	}
	return g
}

// CliffStrip returns a Grid that is flat everywhere except for the samples
// whose easting lies in [eastAt, eastAt+stripWidth), which are raised to
// riseM metres. The step up to and down from that strip happens over a
// single cell: a wall too steep to cross, used to exercise the
// impassable-terrain path in the cost model and planner.
func CliffStrip(halfSpan, cs, eastAt, stripWidth, riseM float64) *Grid {
	g := Flat(halfSpan, cs)
	for y := int32(0); y < g.Height; y++ {
		for x := int32(0); x < g.Width; x++ {
			e := g.Origin.E + float64(x)*cs
			if e >= eastAt && e < eastAt+stripWidth {
				g.Set(x, y, riseM)
			}
		}
	}
	return g
}
