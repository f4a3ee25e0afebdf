package stivalg

import "math"

// relax iteratively improves a Path by finite-difference vertex nudging
// (phase A) followed by split/merge topology edits (phase B), per
// spec.md §4.7. Phase A only moves a vertex to a strictly faster position;
// the phase B result replaces the path whenever it is still walkable, even
// if it is not faster. It stops once an iteration improves total time by
// less than 0.001s, or when the phase B result is no longer walkable (the
// previous points are then kept).
func relax(p Path, atlas Atlas) Path {
	points := p.Points()
	time := timeOf(points, atlas)

	for {
		nudgeVertices(points, atlas)

		next := splitAndMerge(points, atlas)
		nextTime := timeOf(next, atlas)

		if math.IsInf(nextTime, 1) || nextTime == 0 {
			// the edited path is no longer walkable; keep the
			// previous points and stop.
			return NewPath(points)
		}

		improvement := time - nextTime
		points, time = next, nextTime
		if improvement < 0.001 {
			return NewPath(points)
		}
	}
}

func timeOf(points []Coord, atlas Atlas) float64 {
	var t float64
	for i := 0; i+1 < len(points); i++ {
		dt, err := (Segment{points[i], points[i+1]}).Time(atlas)
		if err != nil {
			return math.Inf(1)
		}
		t += dt
	}
	return t
}

// nudgeVertices performs phase A in place: for each interior vertex, a
// finite-difference gradient step followed by a bounded line search.
func nudgeVertices(points []Coord, atlas Atlas) {
	de := Coord{E: 4, N: 0}
	dn := Coord{E: 0, N: 4}

	for i := 1; i < len(points)-1; i++ {
		c, prev, next := points[i], points[i-1], points[i+1]

		t0 := tripointTime(prev, c, next, atlas)
		tEMinus := tripointTime(prev, c.Sub(de), next, atlas)
		tEPlus := tripointTime(prev, c.Add(de), next, atlas)
		tNMinus := tripointTime(prev, c.Sub(dn), next, atlas)
		tNPlus := tripointTime(prev, c.Add(dn), next, atlas)

		var dcE, dcN Coord
		if !math.IsInf(tEMinus, 1) {
			dcE = dcE.Add(de.Scale(tEMinus - t0))
		}
		if !math.IsInf(tEPlus, 1) {
			dcE = dcE.Add(de.Scale(t0 - tEPlus))
		}
		if !math.IsInf(tNMinus, 1) {
			dcN = dcN.Add(dn.Scale(tNMinus - t0))
		}
		if !math.IsInf(tNPlus, 1) {
			dcN = dcN.Add(dn.Scale(t0 - tNPlus))
		}

		dc := dcE.Add(dcN).Scale(16)
		if dc.Len() == 0 {
			continue
		}
		if dc.Len() > 20 {
			dc = dc.Normalize().Scale(20)
		}

		tMin := t0
		for j := 1; j <= 20; j++ {
			cj := c.Add(dc.Scale(float64(j) * 0.5))
			tj := tripointTime(prev, cj, next, atlas)
			if tj < tMin {
				points[i] = cj
				tMin = tj
			}
		}
	}
}

// splitAndMerge performs phase B: walk the current points, inserting a
// midpoint where consecutive kept points are farther than 20m apart (if
// the resulting tripoint is still walkable) and skipping a point when it
// is closer than 10m to its predecessor (if the path can still reach the
// point beyond it).
func splitAndMerge(points []Coord, atlas Atlas) []Coord {
	n := len(points)
	result := make([]Coord, 0, n)
	c := points[0]
	result = append(result, c)

	i := 1
	for i < n {
		next := points[i]

		if i == n-1 {
			result = append(result, next)
			break
		}

		d := c.Dist(next)

		if d > 20 {
			mid := c.Mid(next)
			if !math.IsInf(tripointTime(c, mid, next, atlas), 1) {
				result = append(result, mid)
				c = mid
				continue
			}
		}

		if d < 10 && i+1 < n {
			if _, err := (Segment{c, points[i+1]}).Time(atlas); err == nil {
				i++
				continue
			}
		}

		result = append(result, next)
		c = next
		i++
	}

	return result
}
