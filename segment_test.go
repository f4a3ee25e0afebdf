package stivalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentTimeFlat(t *testing.T) {
	s := Segment{Coord{0, 0}, Coord{10, 0}}
	got, err := s.Time(flatAtlas())
	require.NoError(t, err)
	assert.InDelta(t, 10*timeByMetre(0, 0), got, 1e-6)
}

func TestSegmentTimeZeroLength(t *testing.T) {
	s := Segment{Coord{5, 5}, Coord{5, 5}}
	got, err := s.Time(flatAtlas())
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestSegmentTimeImpassable(t *testing.T) {
	s := Segment{Coord{0, 0}, Coord{10, 0}}
	_, err := s.Time(slopeAtlas(1.5, 0))
	assert.ErrorIs(t, err, errImpassable)
}

func TestSegmentUphillGainIgnoresDownhill(t *testing.T) {
	atlas := slopeAtlas(0.2, 0)
	up, err := (Segment{Coord{0, 0}, Coord{10, 0}}).UphillGain(atlas)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, up, 1e-6)

	down, err := (Segment{Coord{10, 0}, Coord{0, 0}}).UphillGain(atlas)
	require.NoError(t, err)
	assert.Equal(t, 0.0, down)
}

func TestTripointTimeInfiniteOnImpassableLeg(t *testing.T) {
	atlas := slopeAtlas(1.5, 0)
	got := tripointTime(Coord{0, 0}, Coord{10, 0}, Coord{20, 0}, atlas)
	assert.True(t, got > 1e300)
}
