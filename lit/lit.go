// Package lit implements the literal representation used by the solver.
package lit

import "fmt"

// Undef is the literal returned when no literal is available, e.g. when the
// branching heuristic finds every variable already assigned. It is never
// placed on a trail and is never equal to any literal produced by New.
const Undef = Lit(0)

// Lit is a signed, nonzero literal over a 1-indexed variable: positive values
// denote the variable true, negative values denote it false. Var(l) = |l|.
// Zero is reserved for Undef and must never be pushed onto a trail or stored
// in a clause.
type Lit int

// New returns the literal for variable v (1-indexed) with the given polarity.
func New(v int, neg bool) Lit {
	if neg {
		return Lit(-v)
	}
	return Lit(v)
}

// NewFromInt returns the literal corresponding to a DIMACS-style signed
// integer, e.g. NewFromInt(-3) is the literal "variable 3 is false".
func NewFromInt(i int) Lit {
	return Lit(i)
}

// Not returns the negation of l.
func (l Lit) Not() Lit {
	return -l
}

// Sign reports whether l is a negative literal.
func (l Lit) Sign() bool {
	return l < 0
}

// Var returns the 1-indexed variable of l.
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Int returns l as a DIMACS-style signed integer.
func (l Lit) Int() int {
	return int(l)
}

// String implements the Stringer interface.
func (l Lit) String() string {
	if l.Sign() {
		return fmt.Sprintf("-%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}
