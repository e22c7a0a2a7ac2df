package solver

import "github.com/Kenny-R/dpllsat/tribool"

// initialUnitSweep seeds the trail from every length-1 clause before the
// main loop starts (spec §4.3), and immediately reports a conflict for a
// literal empty clause: such a clause has no variable to index under, so
// occurrence-index-based propagation would never visit it otherwise, and
// an empty clause makes the formula trivially unsatisfiable regardless of
// propagation (spec §4.1, §7 "UnsatisfiableAtParse").
// It returns true if a contradiction is found at decision level 0 — a
// terminal transition, not a continuation (spec §9's note on the source
// conflating the two).
func (s *Solver) initialUnitSweep() bool {
	for i := 0; i < s.store.len(); i++ {
		c := s.store.get(handle(i))
		switch len(c.lits) {
		case 0:
			return true
		case 1:
			l := c.lits[0]
			switch s.model.valueOf(l) {
			case tribool.False:
				return true
			case tribool.Undef:
				s.enqueue(l)
			}
		}
	}
	return false
}
