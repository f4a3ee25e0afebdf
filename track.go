package stivalg

// TrackStore reads waypoint sequences from, and writes computed routes to,
// an external track format. internal/gpxio.Store is the only
// implementation shipped by this module, backed by GPX 1.1 files.
type TrackStore interface {
	// Read loads a sequence of coordinates from the track file at path.
	Read(path string) ([]Coord, error)

	// Write serializes p as a track named trackName to path, sampling
	// atlas for each point's elevation.
	Write(path string, trackName string, p Path, atlas Atlas) error
}
