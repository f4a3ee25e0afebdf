// Package terrain provides concrete stivalg.Atlas implementations backed by
// an in-memory elevation raster, plus a small set of synthetic generators
// used by tests and the CLI's example/debug commands.
package terrain

import (
	"fmt"
	"math"

	"github.com/arl/stivalg"
)

// Grid is a regularly spaced elevation raster: Width*Height samples of
// Cs-metre cell size, with the sample at grid index (0,0) located at world
// coordinate Origin. It implements stivalg.Atlas by bilinear interpolation
// of the four cells surrounding a queried coordinate, and by symmetric
// finite differences for the gradient.
type Grid struct {
	Width, Height int32
	Cs            float64 // cell size, along both axes, in metres
	Origin        stivalg.Coord
	Heights       []float64 // Width*Height samples, row-major (y*Width+x)
}

// NewGrid allocates a Width x Height grid of cell size cs, anchored at
// origin, with every sample initialized to zero elevation.
func NewGrid(width, height int32, cs float64, origin stivalg.Coord) *Grid {
	return &Grid{
		Width:   width,
		Height:  height,
		Cs:      cs,
		Origin:  origin,
		Heights: make([]float64, width*height),
	}
}

func (g *Grid) at(x, y int32) float64 {
	if x < 0 {
		x = 0
	}
	if x >= g.Width {
		x = g.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= g.Height {
		y = g.Height - 1
	}
	return g.Heights[y*g.Width+x]
}

// Set stores the elevation sample at cell (x,y).
func (g *Grid) Set(x, y int32, elevation float64) {
	g.Heights[y*g.Width+x] = elevation
}

// cellCoords converts a world coordinate to fractional grid-cell space.
func (g *Grid) cellCoords(c stivalg.Coord) (fx, fy float64) {
	fx = (c.E - g.Origin.E) / g.Cs
	fy = (c.N - g.Origin.N) / g.Cs
	return
}

func (g *Grid) outOfBounds(fx, fy float64) bool {
	return fx < 0 || fy < 0 || fx > float64(g.Width-1) || fy > float64(g.Height-1)
}

// Elevation implements stivalg.Atlas.
func (g *Grid) Elevation(c stivalg.Coord) (float64, error) {
	fx, fy := g.cellCoords(c)
	if g.outOfBounds(fx, fy) {
		return 0, fmt.Errorf("terrain: %w: e=%.2f n=%.2f", stivalg.ErrOutOfAtlas, c.E, c.N)
	}
	return g.bilinear(fx, fy), nil
}

func (g *Grid) bilinear(fx, fy float64) float64 {
	x0 := int32(math.Floor(fx))
	y0 := int32(math.Floor(fy))
	x1, y1 := x0+1, y0+1
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	h00 := g.at(x0, y0)
	h10 := g.at(x1, y0)
	h01 := g.at(x0, y1)
	h11 := g.at(x1, y1)

	h0 := h00*(1-tx) + h10*tx
	h1 := h01*(1-tx) + h11*tx
	return h0*(1-ty) + h1*ty
}

// Gradient implements stivalg.Atlas using a central finite difference of
// half the cell size along each axis, falling back to a one-sided
// difference at the raster edges.
func (g *Grid) Gradient(c stivalg.Coord) (stivalg.GradientSample, error) {
	fx, fy := g.cellCoords(c)
	if g.outOfBounds(fx, fy) {
		return stivalg.GradientSample{}, fmt.Errorf("terrain: %w: e=%.2f n=%.2f", stivalg.ErrOutOfAtlas, c.E, c.N)
	}

	elev := g.bilinear(fx, fy)

	const h = 0.5 // half a cell, in cell units
	// Sample positions are clamped into the raster, which turns the
	// central difference into a one-sided one at the edges.
	xm, xp := math.Max(fx-h, 0), math.Min(fx+h, float64(g.Width-1))
	ym, yp := math.Max(fy-h, 0), math.Min(fy+h, float64(g.Height-1))
	var de, dn float64
	if xp > xm {
		de = (g.bilinear(xp, fy) - g.bilinear(xm, fy)) / ((xp - xm) * g.Cs)
	}
	if yp > ym {
		dn = (g.bilinear(fx, yp) - g.bilinear(fx, ym)) / ((yp - ym) * g.Cs)
	}

	return stivalg.GradientSample{Elevation: elev, De: de, Dn: dn}, nil
}
