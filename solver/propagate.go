package solver

import (
	"github.com/Kenny-R/dpllsat/lit"
	"github.com/Kenny-R/dpllsat/tribool"
)

// enqueue records l as true on the trail, updating the model. Invariant
// I4: a variable is not reassigned while already assigned, so callers
// must only enqueue literals over unassigned variables (the initial unit
// sweep, propagation and backtrack all enqueue only such literals).
func (s *Solver) enqueue(l lit.Lit) {
	s.model.assign(l)
	s.trail.pushAssignment(l)
}

// propagate drains the trail from the propagation cursor: for each
// literal, it visits only the clauses threatened by that literal becoming
// true (those holding its negation), looking for a clause that has gone
// empty (conflict) or down to its last unassigned literal (a new unit).
// It returns the conflicting clause's handle and true on conflict, or the
// zero handle and false once the queue drains without one.
func (s *Solver) propagate() (handle, bool) {
	for s.cursor < s.trail.len() {
		entry := s.trail.at(s.cursor)
		s.cursor++
		if entry.kind != assignedEntry {
			continue
		}
		p := entry.lit
		s.stats.Propagations++

		for _, h := range s.idx.threatenedBy(p) {
			c := s.store.get(h)

			satisfied := false
			unassignedCount := 0
			var lastUnassigned lit.Lit

			for _, l := range c.lits {
				switch s.model.valueOf(l) {
				case tribool.True:
					satisfied = true
				case tribool.Undef:
					unassignedCount++
					lastUnassigned = l
				}
				if satisfied {
					break
				}
			}
			if satisfied {
				continue
			}
			switch unassignedCount {
			case 0:
				return h, true
			case 1:
				s.enqueue(lastUnassigned)
			}
		}
	}
	return 0, false
}
