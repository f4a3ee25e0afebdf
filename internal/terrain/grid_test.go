package terrain

import (
	"testing"

	"github.com/arl/stivalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatElevationIsZero(t *testing.T) {
	g := Flat(50, 1)
	e, err := g.Elevation(stivalg.Coord{E: 10, N: -5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, e)

	grad, err := g.Gradient(stivalg.Coord{E: 10, N: -5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, grad.De)
	assert.Equal(t, 0.0, grad.Dn)
}

func TestConstantSlopeGradient(t *testing.T) {
	g := ConstantSlope(50, 1, 0.3)
	grad, err := g.Gradient(stivalg.Coord{E: 0, N: 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.3, grad.De, 1e-9)
	assert.InDelta(t, 0, grad.Dn, 1e-9)
}

func TestOutOfBoundsReturnsErrOutOfAtlas(t *testing.T) {
	g := Flat(10, 1)
	_, err := g.Elevation(stivalg.Coord{E: 1000, N: 1000})
	assert.ErrorIs(t, err, stivalg.ErrOutOfAtlas)
}

func TestCliffStripIsImpassable(t *testing.T) {
	g := CliffStrip(50, 1, 0, 1, 50)
	seg := stivalg.Segment{A: stivalg.Coord{E: -5, N: 0}, B: stivalg.Coord{E: 5, N: 0}}
	_, err := seg.Time(g)
	assert.Error(t, err)
}
