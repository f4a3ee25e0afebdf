package stivalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodePoolInternGridDedups(t *testing.T) {
	np := newNodePool()
	i1 := np.internGrid(3, 4, Coord{75, 100})
	i2 := np.internGrid(3, 4, Coord{75, 100})
	i3 := np.internGrid(3, 5, Coord{75, 125})

	assert.Equal(t, i1, i2)
	assert.NotEqual(t, i1, i3)
	assert.Equal(t, 2, np.count())
}

func TestNodePoolAddEndpointBypassesDedup(t *testing.T) {
	np := newNodePool()
	i1 := np.internGrid(0, 0, Coord{0, 0})
	i2 := np.addEndpoint(Coord{0, 0})

	assert.NotEqual(t, i1, i2)
	assert.Equal(t, 2, np.count())
}

func TestNodePoolHasGrid(t *testing.T) {
	np := newNodePool()
	assert.False(t, np.hasGrid(1, 1))
	np.internGrid(1, 1, Coord{25, 25})
	assert.True(t, np.hasGrid(1, 1))
}

func TestGridKeyCantorPairingIsInjective(t *testing.T) {
	seen := make(map[int64]gridKey)
	for x := -5; x <= 5; x++ {
		for y := -5; y <= 5; y++ {
			k := gridKey{x, y}
			c := k.cantor()
			if prev, ok := seen[c]; ok {
				t.Fatalf("collision: %v and %v both map to %d", prev, k, c)
			}
			seen[c] = k
		}
	}
}
