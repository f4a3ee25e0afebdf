package stivalg

import "github.com/aurelien-rainone/assertgo"

// gridKey is the grid-unit coordinate (not world coordinate) of a
// candidate lattice node, keyed for deduplication the way
// original_source/src/graph.rs's node_exists does: via the Cantor pairing
// function over (x, y).
//
// The reference formula (x+y)*(x+y+1)/2+x is only injective over
// non-negative integers, which is all the original program ever produces
// (it works in unsigned UTM grid units starting at its atlas's corner).
// Since this lattice is centered on an arbitrary waypoint-pair midpoint,
// x and y both range over negative values too, and the raw formula
// collides badly there (e.g. (-5,4) and (-5,5) both hash to -5). Each
// coordinate is zigzag-encoded to a non-negative integer first, which
// restores injectivity while keeping the same pairing shape.
type gridKey struct{ x, y int }

func zigzag(v int) int64 {
	i := int64(v)
	if i >= 0 {
		return 2 * i
	}
	return -2*i - 1
}

func (k gridKey) cantor() int64 {
	x, y := zigzag(k.x), zigzag(k.y)
	return (x+y)*(x+y+1)/2 + x
}

// nodePool interns lattice cells into a dense, gapless index space shared
// by a single Graph. Each (x,y) grid-unit coordinate maps to exactly one
// node index, no matter how many times it is requested; this is the same
// shape as the teacher's DtNodePool (node.go), specialized from
// polygon-reference hashing to 2D grid-cell hashing.
type nodePool struct {
	coords []Coord // dense node coordinates, node i at coords[i]
	byGrid map[int64]int
}

func newNodePool() *nodePool {
	return &nodePool{byGrid: make(map[int64]int)}
}

// internGrid returns the dense index for the lattice cell at grid-unit
// coordinates (x,y) and world coordinate c, allocating a new node on
// first sight. Subsequent calls for the same (x,y) always return the same
// index.
func (np *nodePool) internGrid(x, y int, c Coord) int {
	key := gridKey{x, y}.cantor()
	if idx, ok := np.byGrid[key]; ok {
		return idx
	}
	idx := len(np.coords)
	np.byGrid[key] = idx
	np.coords = append(np.coords, c)
	return idx
}

// hasGrid reports whether the lattice cell at (x,y) has already been
// interned.
func (np *nodePool) hasGrid(x, y int) bool {
	_, ok := np.byGrid[gridKey{x, y}.cantor()]
	return ok
}

// addEndpoint allocates a fresh node bypassing grid deduplication:
// endpoint anchors are distinct nodes even if they happen to coincide
// with a lattice cell, per spec.md §3.
func (np *nodePool) addEndpoint(c Coord) int {
	idx := len(np.coords)
	np.coords = append(np.coords, c)
	return idx
}

func (np *nodePool) count() int {
	return len(np.coords)
}

func (np *nodePool) coord(i int) Coord {
	assert.True(i >= 0 && i < len(np.coords), "nodePool: index %d out of range [0,%d)", i, len(np.coords))
	return np.coords[i]
}
