package solver

import "github.com/Kenny-R/dpllsat/lit"

// pickBranchingLiteral scans every unassigned variable's positive and
// negative activity and returns the literal with the maximum score across
// all unassigned variables and both polarities. Ties between variables
// favor the last variable encountered whose score is greater than or
// equal to the current maximum, matching original_source's
// get_next_decision_literal (which compares with >=, not >) — see spec
// §9's open question on this tie-break; either rule is valid, this repo
// picks the source's. When a variable's two polarities tie, its positive
// literal is taken.
// Returns lit.Undef if every variable is already assigned.
func (s *Solver) pickBranchingLiteral() lit.Lit {
	maxActivity := 0.0
	best := lit.Undef

	for v := 1; v <= s.nVars; v++ {
		if !s.model.isUnassigned(v) {
			continue
		}
		if s.act.pos[v] >= maxActivity && s.act.pos[v] >= s.act.neg[v] {
			maxActivity = s.act.pos[v]
			best = lit.New(v, false)
		} else if s.act.neg[v] >= maxActivity {
			maxActivity = s.act.neg[v]
			best = lit.New(v, true)
		}
	}
	return best
}

// decide pushes a decision marker and then the chosen literal, entering a
// new decision level (spec §4.3 "Decision").
func (s *Solver) decide(l lit.Lit) {
	s.trail.pushDecisionMarker()
	s.decisionLevel++
	s.cursor++ // the marker itself is not a literal to propagate
	s.stats.Decisions++
	s.enqueue(l)
}
