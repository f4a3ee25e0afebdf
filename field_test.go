package stivalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldAtHandlesNegativeCoords(t *testing.T) {
	assert.Equal(t, Field{0, 0}, FieldAt(Coord{0.5, 0.5}))
	assert.Equal(t, Field{-1, -1}, FieldAt(Coord{-0.5, -0.5}))
	assert.Equal(t, Field{-1, 0}, FieldAt(Coord{-0.01, 0}))
}

func TestFieldBoundsInclusiveSouthWest(t *testing.T) {
	f := Field{2, 3}
	south, north, west, east := f.bounds()
	assert.Equal(t, 3.0, south)
	assert.Equal(t, 4.0, north)
	assert.Equal(t, 2.0, west)
	assert.Equal(t, 3.0, east)

	assert.Equal(t, f, FieldAt(Coord{west, south}))
	assert.NotEqual(t, f, FieldAt(Coord{east, north}))
}

func TestWalkSegmentSingleField(t *testing.T) {
	var visited []Field
	var lengths []float64
	walkSegment(Coord{0.1, 0.1}, Coord{0.5, 0.5}, func(f Field, length float64) bool {
		visited = append(visited, f)
		lengths = append(lengths, length)
		return true
	})
	assert.Equal(t, []Field{{0, 0}}, visited)
	assert.InDelta(t, Coord{0.1, 0.1}.Dist(Coord{0.5, 0.5}), lengths[0], 1e-9)
}

func TestWalkSegmentCoversWholeLength(t *testing.T) {
	a, b := Coord{-5.3, 2.7}, Coord{12.1, -8.4}
	var total float64
	var fields []Field
	walkSegment(a, b, func(f Field, length float64) bool {
		total += length
		fields = append(fields, f)
		return true
	})
	assert.InDelta(t, a.Dist(b), total, 1e-6)
	assert.Equal(t, FieldAt(a), fields[0])
}

func TestWalkSegmentEachStepIsAdjacent(t *testing.T) {
	a, b := Coord{0, 0}, Coord{20, 13}
	var fields []Field
	walkSegment(a, b, func(f Field, length float64) bool {
		fields = append(fields, f)
		return true
	})
	for i := 1; i < len(fields); i++ {
		dx := fields[i].X - fields[i-1].X
		dy := fields[i].Y - fields[i-1].Y
		assert.True(t, abs(dx) <= 1 && abs(dy) <= 1 && (dx != 0 || dy != 0),
			"step %d: %v -> %v is not a single-cell step", i, fields[i-1], fields[i])
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestWalkSegmentStopsEarlyWhenCallbackReturnsFalse(t *testing.T) {
	calls := 0
	walkSegment(Coord{0, 0}, Coord{100, 0}, func(f Field, length float64) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}
