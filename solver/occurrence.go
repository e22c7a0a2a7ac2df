package solver

import "github.com/Kenny-R/dpllsat/lit"

// occurrenceIndex maps each variable to the clause handles in which it
// appears positively (pos) and negatively (neg). Built once, after the
// clause store is frozen, and read-only for the rest of the solve
// (spec §4.2): clauses added to the store after it is built would be
// missing from it.
type occurrenceIndex struct {
	pos [][]handle
	neg [][]handle
}

// buildOccurrenceIndex scans every clause exactly once and records each
// literal's handle under its variable and polarity.
func buildOccurrenceIndex(s *store, nVars int) *occurrenceIndex {
	idx := &occurrenceIndex{
		pos: make([][]handle, nVars+1),
		neg: make([][]handle, nVars+1),
	}
	for i := 0; i < s.len(); i++ {
		h := handle(i)
		for _, l := range s.get(h).lits {
			v := l.Var()
			if l.Sign() {
				idx.neg[v] = append(idx.neg[v], h)
			} else {
				idx.pos[v] = append(idx.pos[v], h)
			}
		}
	}
	return idx
}

// threatenedBy returns the clauses whose satisfaction is threatened by p
// becoming true: the clauses in which p's negation occurs. Propagation
// visits only these, per literal pushed onto the trail (spec §4.3).
func (idx *occurrenceIndex) threatenedBy(p lit.Lit) []handle {
	if p.Sign() {
		return idx.pos[p.Var()]
	}
	return idx.neg[p.Var()]
}
