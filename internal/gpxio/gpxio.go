// Package gpxio implements stivalg.TrackStore over GPX 1.1 files, using
// github.com/tkrajina/gpxgo for parsing and serialization and
// internal/projection to convert between the UTM zone 33N coordinates
// stivalg works in and the WGS-84 lat/lon GPX tracks are expressed in.
package gpxio

import (
	"fmt"
	"os"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/arl/stivalg"
	"github.com/arl/stivalg/internal/projection"
)

// Store reads and writes GPX 1.1 track files.
type Store struct{}

// Read loads the first track segment of the GPX file at path and returns
// its points converted to UTM zone 33N coordinates.
func (Store) Read(path string) ([]stivalg.Coord, error) {
	g, err := gpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("gpxio: parsing %s: %w", path, err)
	}
	if len(g.Tracks) == 0 || len(g.Tracks[0].Segments) == 0 {
		return nil, fmt.Errorf("gpxio: %s has no track segments", path)
	}

	seg := g.Tracks[0].Segments[0]
	points := make([]stivalg.Coord, len(seg.Points))
	for i, p := range seg.Points {
		e, n := projection.FromLatLon(p.Latitude, p.Longitude)
		points[i] = stivalg.Coord{E: e, N: n}
	}
	return points, nil
}

// Write serializes path_ as a single-segment GPX 1.1 track named
// trackName, sampling atlas for each point's elevation.
func (Store) Write(path string, trackName string, path_ stivalg.Path, atlas stivalg.Atlas) error {
	track := gpx.GPXTrack{
		Name:     trackName,
		Segments: []gpx.GPXTrackSegment{{}},
	}

	for _, c := range path_.Points() {
		lat, lon := projection.ToLatLon(c.E, c.N)
		wp := gpx.GPXPoint{
			Point: gpx.Point{Latitude: lat, Longitude: lon},
		}
		if elev, err := atlas.Elevation(c); err == nil {
			wp.Elevation = *gpx.NewNullableFloat64(elev)
		}
		track.Segments[0].Points = append(track.Segments[0].Points, wp)
	}

	g := &gpx.GPX{
		Version: "1.1",
		Creator: "stivalg",
		Name:    trackName,
		Tracks:  []gpx.GPXTrack{track},
	}

	xmlBytes, err := g.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return fmt.Errorf("gpxio: encoding %s: %w", trackName, err)
	}

	if err := os.WriteFile(path, xmlBytes, 0o644); err != nil {
		return fmt.Errorf("gpxio: writing %s: %w", path, err)
	}
	return nil
}
