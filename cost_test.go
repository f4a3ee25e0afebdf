package stivalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeByMetreFlat(t *testing.T) {
	// slope 0 falls in the (-0.18,0.00] knot: s1=-0.18,s2=0,t1=0.5,t2=1.2
	got := timeByMetre(0, 0)
	assert.InDelta(t, 1.2, got, 1e-9)
}

func TestTimeByMetreAddsGradientPenalty(t *testing.T) {
	flat := timeByMetre(0, 0)
	withGrad := timeByMetre(0, 0.2)
	assert.InDelta(t, flat+1.0, withGrad, 1e-9)
}

func TestTimeByMetreKnotBoundaries(t *testing.T) {
	for _, k := range slopeKnots {
		if k.lo == negInf || k.hi == posInf {
			continue
		}
		if k.hi != k.s2 {
			// the documented reference discontinuity: this knot's line
			// is anchored at s2, not at its own hi, so t(hi) != t2.
			continue
		}
		// evaluating exactly at hi must land in this knot, not the next
		got := timeByMetre(k.hi, 0)
		assert.InDelta(t, k.t2, got, 1e-9)
	}
}

// The (-0.36,-0.18] knot's line is anchored at s2=-0.12, not at its own
// upper bound of -0.18: evaluating at s=-0.18 therefore does not land on
// t2=0.5 the way every other knot's right edge does. This preserves a
// discontinuity present in the reference implementation.
func TestTimeByMetrePreservesReferenceDiscontinuity(t *testing.T) {
	got := timeByMetre(-0.18, 0)
	assert.NotInDelta(t, 0.5, got, 1e-9)
}

func TestTimeByMetreMonotonicAroundZero(t *testing.T) {
	downhill := timeByMetre(-0.1, 0.1)
	flat := timeByMetre(0, 0)
	uphill := timeByMetre(0.1, 0.1)
	assert.Less(t, flat, uphill)
	assert.Less(t, flat, downhill+0.01) // with the 5*absGrad penalty, a gentle downhill also costs more than flat
}
