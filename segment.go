package stivalg

import "math"

// Segment is an ordered pair of coordinates, the unit of cost evaluation.
type Segment struct {
	A, B Coord
}

// Len returns the Euclidean length of the segment.
func (s Segment) Len() float64 {
	return s.A.Dist(s.B)
}

// Time returns the estimated traversal time of the segment, in seconds,
// by walking it field by field and accumulating slope-dependent cost. It
// returns errImpassable if any traversed field has gradient magnitude
// greater than 1 (slope steeper than 45 degrees).
func (s Segment) Time(atlas Atlas) (float64, error) {
	r := s.Len()
	if r == 0 {
		return 0, nil
	}
	dirE, dirN := (s.B.E-s.A.E)/r, (s.B.N-s.A.N)/r

	var time float64
	var walkErr error
	walkSegment(s.A, s.B, func(f Field, length float64) bool {
		g, err := atlas.Gradient(f.Coord())
		if err != nil {
			walkErr = err
			return false
		}
		absSq := g.AbsSq()
		if absSq > 1 {
			walkErr = errImpassable
			return false
		}
		slope := dirE*g.De + dirN*g.Dn
		time += length * timeByMetre(slope, math.Sqrt(absSq))
		return true
	})
	if walkErr != nil {
		return 0, walkErr
	}
	return time, nil
}

// UphillGain returns the accumulated elevation gain along the segment:
// the sum, over every walked field, of max(0, slope)*length.
func (s Segment) UphillGain(atlas Atlas) (float64, error) {
	r := s.Len()
	if r == 0 {
		return 0, nil
	}
	dirE, dirN := (s.B.E-s.A.E)/r, (s.B.N-s.A.N)/r

	var gain float64
	var walkErr error
	walkSegment(s.A, s.B, func(f Field, length float64) bool {
		g, err := atlas.Gradient(f.Coord())
		if err != nil {
			walkErr = err
			return false
		}
		slope := dirE*g.De + dirN*g.Dn
		if slope > 0 {
			gain += slope * length
		}
		return true
	})
	if walkErr != nil {
		return 0, walkErr
	}
	return gain, nil
}

// tripointTime returns Time(a,b)+Time(b,c), or +Inf if either leg is
// impassable or out of atlas.
func tripointTime(a, b, c Coord, atlas Atlas) float64 {
	t1, err := (Segment{a, b}).Time(atlas)
	if err != nil {
		return math.Inf(1)
	}
	t2, err := (Segment{b, c}).Time(atlas)
	if err != nil {
		return math.Inf(1)
	}
	return t1 + t2
}
