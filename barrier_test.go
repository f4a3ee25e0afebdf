package stivalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarrierIsCrossingStrictIntersection(t *testing.T) {
	b := NewBarrier([]Coord{{50, -50}, {50, 50}})

	assert.True(t, b.IsCrossing(Coord{0, 0}, Coord{100, 0}))
	assert.False(t, b.IsCrossing(Coord{0, 0}, Coord{40, 0}))
	assert.False(t, b.IsCrossing(Coord{60, 0}, Coord{100, 0}))
}

func TestBarrierIsCrossingParallelNeverCrosses(t *testing.T) {
	b := NewBarrier([]Coord{{50, -50}, {50, 50}})
	assert.False(t, b.IsCrossing(Coord{0, -10}, Coord{0, 10}))
}

func TestBarrierDistanceSqToEndpoint(t *testing.T) {
	b := NewBarrier([]Coord{{0, 0}, {10, 0}})
	assert.InDelta(t, 0, b.DistanceSq(Coord{0, 0}), 1e-9)
	assert.InDelta(t, 25, b.DistanceSq(Coord{5, 5}), 1e-9)
	assert.InDelta(t, 4, b.DistanceSq(Coord{-2, 0}), 1e-9)
}

func TestBarrierMultiSegment(t *testing.T) {
	b := NewBarrier([]Coord{{0, 0}, {10, 0}, {10, 10}})
	// crosses the second (vertical) leg, clear of the shared vertex
	assert.True(t, b.IsCrossing(Coord{5, 5}, Coord{15, 5}))
	// crosses the first (horizontal) leg, clear of the shared vertex
	assert.True(t, b.IsCrossing(Coord{5, -5}, Coord{5, 5}))
	// passes entirely beyond both legs
	assert.False(t, b.IsCrossing(Coord{20, -5}, Coord{20, 5}))
}

func TestNewBarrierPanicsOnTooFewPoints(t *testing.T) {
	assert.Panics(t, func() { NewBarrier([]Coord{{0, 0}}) })
}

func TestNewBarrierFromPointsMatchesNewBarrier(t *testing.T) {
	pts := []Coord{{0, 0}, {10, 0}, {10, 10}}
	assert.Equal(t, NewBarrier(pts), NewBarrierFromPoints(pts))
}

func TestBarrierBuilderAddPoint(t *testing.T) {
	bb := NewBarrierBuilder()
	bb.AddPoint(Coord{0, 0})
	bb.AddPoint(Coord{10, 0})
	bb.AddPoint(Coord{10, 10})
	assert.Equal(t, 3, bb.Len())

	b := bb.Build()
	assert.Equal(t, []Coord{{0, 0}, {10, 0}, {10, 10}}, b.Points())
}

func TestBarrierBuilderUpdatePoint(t *testing.T) {
	bb := NewBarrierBuilder()
	bb.AddPoint(Coord{0, 0})
	bb.AddPoint(Coord{5, 5})
	bb.UpdatePoint(1, Coord{10, 0})

	b := bb.Build()
	assert.Equal(t, []Coord{{0, 0}, {10, 0}}, b.Points())
}

func TestBarrierBuilderBuildPanicsOnTooFewPoints(t *testing.T) {
	bb := NewBarrierBuilder()
	bb.AddPoint(Coord{0, 0})
	assert.Panics(t, func() { bb.Build() })
}
