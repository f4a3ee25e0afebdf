package stivalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordArithmetic(t *testing.T) {
	a := Coord{E: 3, N: 4}
	b := Coord{E: 1, N: 1}

	assert.Equal(t, Coord{4, 5}, a.Add(b))
	assert.Equal(t, Coord{2, 3}, a.Sub(b))
	assert.Equal(t, Coord{6, 8}, a.Scale(2))
	assert.Equal(t, 7.0, a.Dot(b))
	assert.Equal(t, 25.0, a.LenSq())
	assert.Equal(t, 5.0, a.Len())
	assert.Equal(t, Coord{2, 2.5}, a.Mid(b))
}

func TestCoordNormalizeZeroVector(t *testing.T) {
	z := Coord{0, 0}
	assert.Equal(t, z, z.Normalize())
}

func TestCoordNormalizeUnitLength(t *testing.T) {
	c := Coord{3, 4}
	n := c.Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
}

func TestCoordDist(t *testing.T) {
	assert.Equal(t, 5.0, (Coord{0, 0}).Dist(Coord{3, 4}))
}
