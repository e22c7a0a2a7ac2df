// Package solver implements an iterative DPLL SAT engine: unit
// propagation over a literal-occurrence index, chronological backtracking
// on a decision-marked trail, and a VSIDS-lite activity heuristic for
// branching. It is a baseline DPLL solver, not CDCL: no clause learning,
// no restarts, no preprocessing, no incremental solving under
// assumptions.
package solver

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Kenny-R/dpllsat/config"
	"github.com/Kenny-R/dpllsat/diag"
	"github.com/Kenny-R/dpllsat/lit"
)

// Stats are the diagnostic counters tracked during a solve.
type Stats struct {
	Conflicts    int
	Propagations int
	Decisions    int
}

// Solver is the SAT solver core. It owns every structure for the duration
// of one solve and is not re-entrant: construct a fresh Solver per input
// (spec §9, "process-global mutable state").
type Solver struct {
	logger *logrus.Logger

	nVars int
	store *store
	idx   *occurrenceIndex

	model         *model
	trail         *trail
	cursor        int
	decisionLevel int

	act *activity

	stats Stats
}

// New returns a solver ready to accept clauses over variables 1..nVars.
func New(cfg *config.Config, nVars int) *Solver {
	logger := diag.NewLogger(false)
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}
	return &Solver{
		logger: logger,
		nVars:  nVars,
		store:  newStore(),
		model:  newModel(nVars),
		trail:  &trail{},
		act:    newActivity(nVars),
	}
}

// AddClause adds a clause, given as signed nonzero DIMACS-style integers,
// to the solver's clause store. The store is append-only until Solve
// freezes it and builds the occurrence index (invariant I6).
func (s *Solver) AddClause(ps []int) {
	lits := make([]lit.Lit, len(ps))
	for i, p := range ps {
		lits[i] = lit.NewFromInt(p)
	}
	s.store.add(lits)
}

// NVars returns the number of variables the solver was constructed with.
func (s *Solver) NVars() int { return s.nVars }

// NConstrs returns the number of clauses added so far.
func (s *Solver) NConstrs() int { return s.store.len() }

// Stats returns a snapshot of the solver's diagnostic counters.
func (s *Solver) Stats() Stats { return s.stats }

// Solve decides satisfiability of the clauses added so far. On true, the
// returned model covers every variable assigned on the final trail; pure
// variables whose value never mattered may be omitted. On false, the
// returned model is empty (spec §4.3).
func (s *Solver) Solve(ctx context.Context) (bool, map[int]bool) {
	s.idx = buildOccurrenceIndex(s.store, s.nVars)

	if conflict := s.initialUnitSweep(); conflict {
		s.logger.Debug("conflict during initial unit sweep at decision level 0")
		return false, map[int]bool{}
	}

	for {
		if ctx.Err() != nil {
			// The core has no cooperative checkpoint mid-propagation; a
			// canceled context is only honored at decision boundaries.
			return false, map[int]bool{}
		}

		conflictClause, conflict := s.propagate()
		if !conflict {
			if branchLit := s.pickBranchingLiteral(); branchLit != lit.Undef {
				s.decide(branchLit)
				s.logger.WithFields(logrus.Fields{
					"decision_level": s.decisionLevel,
					"conflicts":      s.stats.Conflicts,
					"propagations":   s.stats.Propagations,
				}).Debug("decision")
				continue
			}
			return true, s.extractModel()
		}

		s.stats.Conflicts++
		s.act.bump(s.stats.Conflicts, s.store.get(conflictClause).lits)
		s.logger.WithFields(logrus.Fields{
			"decision_level": s.decisionLevel,
			"conflicts":      s.stats.Conflicts,
			"propagations":   s.stats.Propagations,
		}).Debug("conflict")

		if s.decisionLevel == 0 {
			return false, map[int]bool{}
		}
		s.backtrack()
	}
}

// extractModel reads off the final trail/model into the public result
// shape, then runs the self-check required before declaring SAT.
func (s *Solver) extractModel() map[int]bool {
	out := map[int]bool{}
	for v := 1; v <= s.nVars; v++ {
		if s.model.isUnassigned(v) {
			continue
		}
		out[v] = s.model.values[v].IsTrue()
	}
	if err := s.checkModel(out); err != nil {
		panic(errors.Wrap(diag.ErrInternalInvariantBroken, err.Error()))
	}
	return out
}

// checkModel verifies every clause has at least one true literal under
// model, the self-check required before declaring SAT (spec §4.3).
func (s *Solver) checkModel(assignment map[int]bool) error {
	for i := 0; i < s.store.len(); i++ {
		satisfied := false
		for _, l := range s.store.get(handle(i)).lits {
			v, ok := assignment[l.Var()]
			if ok && v != l.Sign() {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return fmt.Errorf("clause %d (%s) has no true literal", i, s.store.get(handle(i)))
		}
	}
	return nil
}
