package solver

import "github.com/Kenny-R/dpllsat/lit"

// backtrack undoes assignments back to the most recent decision marker and
// flips that decision's literal, per spec §4.3 "Backtrack". It must only
// be called when decisionLevel > 0; callers check that and terminate
// UNSAT otherwise.
func (s *Solver) backtrack() {
	decisionLit := lit.Undef

	for {
		entry := s.trail.popLast()
		if entry.kind == decisionMarkerEntry {
			break
		}
		s.model.unassign(entry.lit.Var())
		decisionLit = entry.lit
	}
	s.decisionLevel--
	s.cursor = s.trail.len()
	// Flip the branch: push the negation as a non-decision implied
	// assignment at the lower decision level (no new marker).
	s.enqueue(decisionLit.Not())
}
