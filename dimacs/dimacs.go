// Package dimacs reads the DIMACS-CNF text format into a numeric clause
// list and a variable count, per the textual grammar: comment lines
// ('c', '%'), one 'p cnf V C' header, then whitespace-separated signed
// integers with '0' terminating each clause. Clauses may span lines.
package dimacs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Kenny-R/dpllsat/diag"
)

// Formula is the result of parsing a DIMACS-CNF stream.
type Formula struct {
	// NVars is the variable count declared by the header.
	NVars int
	// Clauses is the clause list read from the body, in file order. A
	// clause may be empty (a 0 with no literal since the header or the
	// previous 0, e.g. two consecutive 0s); blank lines are skipped and
	// never produce a clause;
	// an empty clause makes the formula trivially unsatisfiable, which is
	// the solver core's concern, not this package's.
	Clauses [][]int
	// Observed is the set of variables that actually occur in the body,
	// which may be a strict subset of 1..NVars.
	Observed map[int]bool
}

// Parse reads a DIMACS-CNF stream. It returns diag.ErrBadFormat wrapped
// with context when the header is missing or malformed, or when a literal
// cannot be parsed as an integer; diag.ErrHeaderMismatch wrapped when the
// clause count disagrees with the header or a literal's variable exceeds
// the declared V.
func Parse(ctx context.Context, r io.Reader) (*Formula, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	nVars, nClauses, headerSeen := 0, 0, false
	var clauses [][]int
	var current []int
	observed := map[int]bool{}
	line := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(diag.ErrIoFailure, err.Error())
		}
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c", "%":
			continue
		case "p":
			if headerSeen {
				return nil, errors.Wrapf(diag.ErrBadFormat, "line %d: duplicate header", line)
			}
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, errors.Wrapf(diag.ErrBadFormat, "line %d: malformed header %q", line, scanner.Text())
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrapf(diag.ErrBadFormat, "line %d: bad variable count", line)
			}
			c, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, errors.Wrapf(diag.ErrBadFormat, "line %d: bad clause count", line)
			}
			nVars, nClauses, headerSeen = v, c, true
			current = []int{}
		default:
			if !headerSeen {
				return nil, errors.Wrapf(diag.ErrBadFormat, "line %d: clause before header", line)
			}
			for _, field := range fields {
				p, err := strconv.Atoi(field)
				if err != nil {
					return nil, errors.Wrapf(diag.ErrBadFormat, "line %d: %q is not an integer", line, field)
				}
				if p == 0 {
					clauses = append(clauses, current)
					current = []int{}
					continue
				}
				v := p
				if v < 0 {
					v = -v
				}
				if v > nVars {
					return nil, errors.Wrapf(diag.ErrHeaderMismatch,
						"variable %d exceeds declared count %d", v, nVars)
				}
				observed[v] = true
				current = append(current, p)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(diag.ErrIoFailure, err.Error())
	}
	if !headerSeen {
		return nil, errors.Wrap(diag.ErrBadFormat, "missing DIMACS header")
	}
	// An unterminated trailing clause (no final 0) is accepted if it still
	// carries literals.
	if len(current) > 0 {
		clauses = append(clauses, current)
	}
	if len(clauses) != nClauses {
		return nil, errors.Wrapf(diag.ErrHeaderMismatch,
			"header declares %d clauses, body has %d", nClauses, len(clauses))
	}
	return &Formula{NVars: nVars, Clauses: clauses, Observed: observed}, nil
}

// Unused returns the declared variables that never occur in the body, in
// ascending order; useful as a diagnostic, never as a validation failure.
func (f *Formula) Unused() []int {
	var out []int
	for v := 1; v <= f.NVars; v++ {
		if !f.Observed[v] {
			out = append(out, v)
		}
	}
	return out
}

// String renders a formula back to DIMACS-CNF text, with the header's
// clause count taken from len(f.Clauses).
func (f *Formula) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d\n", f.NVars, len(f.Clauses))
	for _, clause := range f.Clauses {
		for _, lit := range clause {
			fmt.Fprintf(&b, "%d ", lit)
		}
		b.WriteString("0\n")
	}
	return b.String()
}
