package solver

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/onsi/gomega"

	"github.com/Kenny-R/dpllsat/config"
)

// TestTrailModelCoherence checks that, after a solve, every variable the
// trail assigned is reflected in the returned model and nothing else is
// (spec §8, "Trail/model coherence").
func TestTrailModelCoherence(t *testing.T) {
	g := gomega.NewWithT(t)

	clauses := [][]int{{1, 2}, {-2, 3}, {-3, 1}}
	s := New(config.New(), 3)
	for _, c := range clauses {
		s.AddClause(c)
	}

	sat, model := s.Solve(context.Background())
	g.Expect(sat).To(gomega.BeTrue())

	onTrail := map[int]bool{}
	for _, entry := range s.trail.entries {
		if entry.kind == assignedEntry {
			onTrail[entry.lit.Var()] = true
		}
	}
	for v := range model {
		g.Expect(onTrail).To(gomega.HaveKey(v))
	}
	for v := range onTrail {
		_, ok := model[v]
		g.Expect(ok).To(gomega.BeTrue())
	}
}

// TestDecisionLevelMatchesMarkerCount checks invariant I2: the count of
// decision markers on the trail equals decisionLevel, observed right
// after a solve completes. On SAT the final trail keeps the markers of
// the decisions that led to the model (two for this formula), so both
// counts are nonzero here.
func TestDecisionLevelMatchesMarkerCount(t *testing.T) {
	g := gomega.NewWithT(t)

	s := New(config.New(), 2)
	s.AddClause([]int{1, 2})
	s.AddClause([]int{-1, 2})

	sat, _ := s.Solve(context.Background())
	g.Expect(sat).To(gomega.BeTrue())

	markers := 0
	for _, entry := range s.trail.entries {
		if entry.kind == decisionMarkerEntry {
			markers++
		}
	}
	g.Expect(markers).To(gomega.Equal(s.decisionLevel))
}

// TestModelDiffAcrossRuns uses go-cmp to compare two models from repeated
// runs of the same input, for readable failure output on mismatch (spec
// §8, "Deterministic output").
func TestModelDiffAcrossRuns(t *testing.T) {
	clauses := [][]int{{1, 2, -3}, {-1, 3}, {2, 3}}

	run := func() map[int]bool {
		s := New(config.New(), 3)
		for _, c := range clauses {
			s.AddClause(c)
		}
		_, model := s.Solve(context.Background())
		return model
	}

	first := run()
	second := run()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("model differs across repeated runs (-first +second):\n%s", diff)
	}
}
