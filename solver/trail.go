package solver

import "github.com/Kenny-R/dpllsat/lit"

// entryKind distinguishes a trail slot holding an assignment from one
// holding a decision marker. The source encodes the marker as the integer
// literal 0; zero is never a legal literal (lit.Lit(0) is lit.Undef), so
// this tagged variant replaces that sentinel trick (spec §9).
type entryKind uint8

const (
	assignedEntry entryKind = iota
	decisionMarkerEntry
)

// trailEntry is one slot of the trail: either a literal that was assigned
// true (by decision or by propagation) or a marker recording that a new
// decision level began at this point.
type trailEntry struct {
	kind entryKind
	lit  lit.Lit
}

// trail is the chronological record of assignments and decision markers
// (spec §3). decisionLevel is always the number of markers it holds
// (invariant I2).
type trail struct {
	entries []trailEntry
}

func (t *trail) len() int {
	return len(t.entries)
}

func (t *trail) pushAssignment(l lit.Lit) {
	t.entries = append(t.entries, trailEntry{kind: assignedEntry, lit: l})
}

func (t *trail) pushDecisionMarker() {
	t.entries = append(t.entries, trailEntry{kind: decisionMarkerEntry})
}

// popLast removes and returns the trail's last entry.
func (t *trail) popLast() trailEntry {
	last := t.entries[len(t.entries)-1]
	t.entries = t.entries[:len(t.entries)-1]
	return last
}

// at returns the entry at trail position i.
func (t *trail) at(i int) trailEntry {
	return t.entries[i]
}
