// Package sudoku encodes a 9x9 Sudoku puzzle as a DIMACS-style CNF clause
// set and decodes a satisfying model back into a solved grid.
package sudoku

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/Kenny-R/dpllsat/diag"
)

const (
	// N is the grid size (and the digit domain, 1..N).
	N = 9
	// D is the box size; N must equal D*D.
	D = 3
)

// Grid is a 9x9 board; 0 denotes an empty cell.
type Grid [N][N]int

// Var returns the CNF variable for "cell (r, c) holds digit d", with r, c,
// d all 1-indexed. Panics if any argument is out of 1..N, mirroring the
// original solver's range check on malformed input.
func Var(r, c, d int) int {
	if r < 1 || r > N || c < 1 || c > N || d < 1 || d > N {
		panic(errors.Wrapf(diag.ErrBadFormat, "var(%d,%d,%d) out of range for N=%d", r, c, d, N))
	}
	return (r-1)*N*N + (c-1)*N + (d - 1) + 1
}

// ParseGrid reads a Sudoku puzzle: either nine lines of nine characters, or
// one 81-character line. '.' and '0' denote an empty cell; any other
// non-digit character is a diag.ErrBadFormat.
func ParseGrid(ctx context.Context, r io.Reader) (Grid, error) {
	var grid Grid

	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return grid, errors.Wrap(diag.ErrIoFailure, err.Error())
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return grid, errors.Wrap(diag.ErrIoFailure, err.Error())
	}

	var flat string
	switch {
	case len(lines) == 1 && len(lines[0]) == N*N:
		flat = lines[0]
	case len(lines) == N:
		for _, line := range lines {
			if len(line) != N {
				return grid, errors.Wrapf(diag.ErrBadFormat, "row %q is not %d characters", line, N)
			}
		}
		flat = strings.Join(lines, "")
	default:
		return grid, errors.Wrapf(diag.ErrBadFormat,
			"expected %d lines of %d characters or one %d-character line, got %d lines", N, N, N*N, len(lines))
	}

	for i, ch := range flat {
		r, c := i/N, i%N
		switch {
		case ch == '.' || ch == '0':
			grid[r][c] = 0
		case ch >= '1' && ch <= '9':
			grid[r][c] = int(ch - '0')
		default:
			return grid, errors.Wrapf(diag.ErrBadFormat, "invalid cell character %q", ch)
		}
	}
	return grid, nil
}

// Encode emits the standard Sudoku CNF: per cell at-least-one and
// pairwise at-most-one over digits, per digit at-least-one over each row,
// column, and box, and a unit clause for every given digit.
func Encode(grid Grid) (clauses [][]int, nVars int) {
	digits := lo.Range(N)
	for i := range digits {
		digits[i]++
	}

	for r := 1; r <= N; r++ {
		for c := 1; c <= N; c++ {
			atLeastOne := lo.Map(digits, func(d int, _ int) int { return Var(r, c, d) })
			clauses = append(clauses, atLeastOne)

			for i, v := range digits {
				for _, w := range digits[i+1:] {
					clauses = append(clauses, []int{-Var(r, c, v), -Var(r, c, w)})
				}
			}
		}
	}

	for _, d := range digits {
		for r := 1; r <= N; r++ {
			row := make([]int, 0, N)
			for c := 1; c <= N; c++ {
				row = append(row, Var(r, c, d))
			}
			clauses = append(clauses, row)
		}
		for c := 1; c <= N; c++ {
			col := make([]int, 0, N)
			for r := 1; r <= N; r++ {
				col = append(col, Var(r, c, d))
			}
			clauses = append(clauses, col)
		}
		for sr := 0; sr < D; sr++ {
			for sc := 0; sc < D; sc++ {
				box := make([]int, 0, N)
				for rd := 1; rd <= D; rd++ {
					for cd := 1; cd <= D; cd++ {
						box = append(box, Var(sr*D+rd, sc*D+cd, d))
					}
				}
				clauses = append(clauses, box)
			}
		}
	}

	for r := 1; r <= N; r++ {
		for c := 1; c <= N; c++ {
			if given := grid[r-1][c-1]; given != 0 {
				clauses = append(clauses, []int{Var(r, c, given)})
			}
		}
	}

	return clauses, N * N * N
}

// Decode reads a satisfying model back into a solved grid. Every cell must
// have exactly one true digit; zero or multiple is diag.ErrDecodeInconsistent,
// which should never occur for a model the solver itself produced and
// passed its own self-check.
func Decode(model map[int]bool) (Grid, error) {
	var grid Grid
	for r := 1; r <= N; r++ {
		for c := 1; c <= N; c++ {
			found := 0
			for d := 1; d <= N; d++ {
				if model[Var(r, c, d)] {
					found++
					grid[r-1][c-1] = d
				}
			}
			if found != 1 {
				return grid, errors.Wrapf(diag.ErrDecodeInconsistent,
					"cell (%d,%d) has %d true digits, want exactly 1", r, c, found)
			}
		}
	}
	return grid, nil
}

// String renders the grid as 9 lines of 9 digits.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < N; r++ {
		for c := 0; c < N; c++ {
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte(byte('0' + g[r][c]))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Flat renders the grid as a single 81-character line.
func (g Grid) Flat() string {
	var b strings.Builder
	for r := 0; r < N; r++ {
		for c := 0; c < N; c++ {
			b.WriteByte(byte('0' + g[r][c]))
		}
	}
	return b.String()
}
