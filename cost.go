package stivalg

// knot describes one piece of the piecewise-linear slope-to-time curve:
// for s in (lo, hi], time-per-meter is the line through (s1,t1)-(s2,t2).
type knot struct {
	lo, hi     float64
	s1, s2     float64
	t1, t2     float64
}

// slopeKnots is the piecewise-linear time-by-metre curve, in ascending
// order of directional slope s. The row covering (-0.36, -0.18] has s2 =
// -0.12, which does not match the row's own upper bound of -0.18: this
// discontinuity is carried over from the reference implementation
// (original_source/src/path.rs) unchanged. It may be a transcription bug
// in the original; see spec.md §9.
var slopeKnots = [...]knot{
	{lo: negInf, hi: -1.00, s1: -2.00, s2: -1.00, t1: 40.0, t2: 15.0},
	{lo: -1.00, hi: -0.83, s1: -1.00, s2: -0.83, t1: 15.0, t2: 3.0},
	{lo: -0.83, hi: -0.58, s1: -0.83, s2: -0.58, t1: 3.0, t2: 1.2},
	{lo: -0.58, hi: -0.36, s1: -0.58, s2: -0.36, t1: 1.2, t2: 0.7},
	{lo: -0.36, hi: -0.18, s1: -0.36, s2: -0.12, t1: 0.7, t2: 0.5},
	{lo: -0.18, hi: 0.00, s1: -0.18, s2: 0.00, t1: 0.5, t2: 1.2},
	{lo: 0.00, hi: 0.18, s1: 0.00, s2: 0.18, t1: 1.2, t2: 1.7},
	{lo: 0.18, hi: 0.36, s1: 0.18, s2: 0.36, t1: 1.7, t2: 2.5},
	{lo: 0.36, hi: 0.58, s1: 0.36, s2: 0.58, t1: 2.5, t2: 4.0},
	{lo: 0.58, hi: 0.83, s1: 0.58, s2: 0.83, t1: 4.0, t2: 10.0},
	{lo: 0.83, hi: 1.00, s1: 0.83, s2: 1.00, t1: 10.0, t2: 60.0},
	{lo: 1.00, hi: posInf, s1: 1.00, s2: 2.00, t1: 60.0, t2: 600.0},
}

const (
	negInf = -1e308
	posInf = 1e308
)

// timeByMetre returns the traversal time per meter, in seconds, for a
// directional slope s (rise over run along the direction of travel) and
// absolute gradient magnitude absGrad (meters of rise per meter of run,
// direction-independent). s is expected in [-2, 2]; slopes steeper than
// that fall in the outermost knot's extrapolated range.
func timeByMetre(s, absGrad float64) float64 {
	k := slopeKnots[len(slopeKnots)-1]
	for _, c := range slopeKnots {
		if s <= c.hi {
			k = c
			break
		}
	}
	t := (k.t2-k.t1)*(s-k.s1)/(k.s2-k.s1) + k.t1
	return t + 5*absGrad
}
