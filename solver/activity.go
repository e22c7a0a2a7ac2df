package solver

import "github.com/Kenny-R/dpllsat/lit"

const (
	// activityIncrement is added to a literal's polarity-specific score on
	// every conflict that cites it (spec §4.3).
	activityIncrement = 1.0
	// activityHalvingRate halves every activity score every this many
	// conflicts, bounding unbounded growth (spec §4.3).
	activityHalvingRate = 1000
)

// activity holds two per-variable scores, one per polarity, used only to
// order branching (VSIDS-lite). Invariant I5: never negative, never reset
// except by the uniform halving rule below.
type activity struct {
	pos []float64
	neg []float64
}

func newActivity(nVars int) *activity {
	return &activity{
		pos: make([]float64, nVars+1),
		neg: make([]float64, nVars+1),
	}
}

// bump increments the activity of every literal in a conflicting clause,
// halving all scores first if the halving rate has been reached.
func (a *activity) bump(conflicts int, lits []lit.Lit) {
	if conflicts%activityHalvingRate == 0 {
		for v := range a.pos {
			a.pos[v] /= 2
			a.neg[v] /= 2
		}
	}
	for _, l := range lits {
		if l.Sign() {
			a.neg[l.Var()] += activityIncrement
		} else {
			a.pos[l.Var()] += activityIncrement
		}
	}
}
