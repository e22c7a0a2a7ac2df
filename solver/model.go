package solver

import (
	"github.com/Kenny-R/dpllsat/lit"
	"github.com/Kenny-R/dpllsat/tribool"
)

// model is the current partial assignment, indexed by variable (1..nVars);
// index 0 is unused. Invariant I1: every literal on the trail matches the
// value here that makes it true.
type model struct {
	values []tribool.Tribool
}

func newModel(nVars int) *model {
	values := make([]tribool.Tribool, nVars+1)
	for i := range values {
		values[i] = tribool.Undef
	}
	return &model{values: values}
}

// valueOf returns the truth value of literal l under the current model.
func (m *model) valueOf(l lit.Lit) tribool.Tribool {
	v := m.values[l.Var()]
	if l.Sign() {
		return v.Not()
	}
	return v
}

// assign records that l is true: the variable's tribool is set so that
// valueOf(l) becomes True, and valueOf(l.Not()) becomes False.
func (m *model) assign(l lit.Lit) {
	m.values[l.Var()] = tribool.NewFromBool(!l.Sign())
}

// unassign clears a variable's value, returning it to Undef.
func (m *model) unassign(v int) {
	m.values[v] = tribool.Undef
}

func (m *model) isUnassigned(v int) bool {
	return m.values[v].IsUndef()
}
