package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	lat, lon := 60.5, 16.2 // within zone 33N

	e, n := FromLatLon(lat, lon)
	gotLat, gotLon := ToLatLon(e, n)

	assert.InDelta(t, lat, gotLat, 1e-6)
	assert.InDelta(t, lon, gotLon, 1e-6)
}

func TestCentralMeridianHasZeroEastingOffset(t *testing.T) {
	e, _ := FromLatLon(60.0, zoneCentralMeridian(Zone33N))
	assert.InDelta(t, falseE, e, 1e-6)
}
