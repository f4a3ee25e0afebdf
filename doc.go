// Package stivalg plans hiking and skiing routes across real terrain.
//
// Given an ordered list of waypoints and a read-only terrain atlas, Plan
// computes a track that minimizes an estimated traversal time. Time depends
// on slope (steep descents and ascents cost more than flat ground) and
// honors user-supplied barrier polylines that the route may never cross.
//
// The algorithm is a pipeline: for each consecutive waypoint pair, build a
// coarse lattice graph spanning an elliptical area around the pair and find
// its shortest path (pass 1), build a finer lattice graph hugging a corridor
// around that coarse path and find its shortest path (pass 2), then relax
// the resulting polyline with a local, gradient-descent-like optimizer that
// also splits long segments and merges short ones. Sub-paths are
// concatenated into the final track.
//
// The planner itself is pure and synchronous: it never touches a
// filesystem or network. The only file access in this package is
// JSONParamsStore's. Reading terrain, loading parameters and saving
// tracks are the job of the Atlas, ParamsStore and TrackStore interfaces,
// implemented respectively by internal/terrain, the JSON-backed
// JSONParamsStore in this package, and internal/gpxio.
package stivalg
