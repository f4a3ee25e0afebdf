package stivalg

// Plan computes a route across atlas visiting params.Points in order,
// honoring params.Barriers, per spec.md §4.8. It returns ErrTooFewWaypoints
// if fewer than two waypoints are given, or *UnreachableError{i} if no
// coarse path connects points[i] and points[i+1].
func Plan(params Params, atlas Atlas) (Path, error) {
	if len(params.Points) < 2 {
		return Path{}, ErrTooFewWaypoints
	}

	var accumulated []Coord
	for i := 0; i+1 < len(params.Points); i++ {
		sub, err := planLeg(params.Points[i], params.Points[i+1], params, atlas)
		if err != nil {
			return Path{}, &UnreachableError{PairIndex: i}
		}
		accumulated = appendPath(accumulated, sub.Points())
	}

	return NewPath(accumulated), nil
}

// planLeg runs the pass-1/pass-2/relax pipeline for a single consecutive
// waypoint pair.
func planLeg(a, b Coord, params Params, atlas Atlas) (Path, error) {
	coarse := newGraph(a, b, params.Barriers, params.CoveringLength, params.CoveringWidth)
	coarse.buildCoarse(params.GridSizePass1, atlas)
	coarsePath, err := coarse.shortestPath()
	if err != nil {
		return Path{}, err
	}

	fine := newGraph(a, b, params.Barriers, params.CoveringLength, params.CoveringWidth)
	fine.buildFineCorridor(coarsePath, params.GridSizePass2, corridorHalfWidth(params), atlas)
	finePath, err := fine.shortestPath()
	if err != nil {
		// spec.md §9: if the fine search fails on a corridor, the
		// sub-segment fails rather than silently promoting the coarse
		// result.
		return Path{}, err
	}

	return relax(finePath, atlas), nil
}

// corridorHalfWidth derives the pass-2 corridor square side, in fine
// cells, from params.PathWidthPass2. The reference implementation always
// uses 1 (gs_pass2/gs_pass2); honoring the width knob is an
// implementer's choice per spec.md §9, activated only when it is set
// to something other than its documented default so the documented test
// scenarios keep matching the reference exactly.
func corridorHalfWidth(params Params) int {
	if params.PathWidthPass2 == DefaultPathWidthPass2 || params.PathWidthPass2 <= 0 {
		return 1
	}
	ss := int(params.PathWidthPass2 / params.GridSizePass2)
	if ss < 1 {
		return 1
	}
	return ss
}
