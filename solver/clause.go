package solver

import (
	"strings"

	"github.com/Kenny-R/dpllsat/lit"
)

// clause is a CNF disjunction of literals.
type clause struct {
	lits []lit.Lit
}

// handle is a stable reference into the clause store: an index, never a
// pointer into a resizable container. The occurrence index holds handles,
// not clause pointers, so it stays valid even though Go slices may move
// their backing array on growth.
type handle int

// store is the solver's clause database: append-only while clauses are
// being added, read-only for the duration of a solve (invariant I6).
type store struct {
	clauses []clause
}

func newStore() *store {
	return &store{}
}

// add appends a clause and returns its stable handle.
func (s *store) add(lits []lit.Lit) handle {
	h := handle(len(s.clauses))
	s.clauses = append(s.clauses, clause{lits: lits})
	return h
}

func (s *store) get(h handle) clause {
	return s.clauses[h]
}

func (s *store) len() int {
	return len(s.clauses)
}

func (c clause) String() string {
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}
