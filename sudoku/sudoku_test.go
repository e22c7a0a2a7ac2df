package sudoku

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarFormula(t *testing.T) {
	assert.Equal(t, 1, Var(1, 1, 1))
	assert.Equal(t, N, Var(1, 1, N))
	assert.Equal(t, N*N*N, Var(N, N, N))
}

func TestVarOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { Var(0, 1, 1) })
	assert.Panics(t, func() { Var(1, 1, 10) })
}

func TestParseGridNineLines(t *testing.T) {
	text := strings.Repeat("1........\n", 9)
	grid, err := ParseGrid(context.Background(), strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, 1, grid[0][0])
	assert.Equal(t, 0, grid[0][1])
}

func TestParseGridFlatLine(t *testing.T) {
	flat := strings.Repeat("0", 81)
	grid, err := ParseGrid(context.Background(), strings.NewReader(flat))
	require.NoError(t, err)
	assert.Equal(t, Grid{}, grid)
}

func TestParseGridBadCharacter(t *testing.T) {
	text := strings.Repeat("x........\n", 9)
	_, err := ParseGrid(context.Background(), strings.NewReader(text))
	require.Error(t, err)
}

func TestParseGridWrongLineCount(t *testing.T) {
	text := "1........\n2........\n"
	_, err := ParseGrid(context.Background(), strings.NewReader(text))
	require.Error(t, err)
}

// TestEncodeDecodeBijection confirms that, for a fully-given (already-solved)
// grid, the model that sets exactly the grid's digits true satisfies every
// clause of its encoding and decodes back to the exact same grid.
func TestEncodeDecodeBijection(t *testing.T) {
	solved := Grid{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}

	clauses, nVars := Encode(solved)
	assert.Equal(t, N*N*N, nVars)

	model := map[int]bool{}
	for v := 1; v <= nVars; v++ {
		model[v] = false
	}
	for r := 1; r <= N; r++ {
		for c := 1; c <= N; c++ {
			model[Var(r, c, solved[r-1][c-1])] = true
		}
	}

	for _, clause := range clauses {
		satisfied := false
		for _, p := range clause {
			v := p
			want := true
			if v < 0 {
				v = -v
				want = false
			}
			if model[v] == want {
				satisfied = true
				break
			}
		}
		assert.Truef(t, satisfied, "clause %v not satisfied by the solved grid's model", clause)
	}

	decoded, err := Decode(model)
	require.NoError(t, err)
	assert.Equal(t, solved, decoded)
}

func TestDecodeInconsistentNoTrueDigit(t *testing.T) {
	model := map[int]bool{}
	_, err := Decode(model)
	require.Error(t, err)
}

func TestDecodeInconsistentMultipleTrueDigits(t *testing.T) {
	model := map[int]bool{Var(1, 1, 1): true, Var(1, 1, 2): true}
	_, err := Decode(model)
	require.Error(t, err)
}

func TestGridStringAndFlat(t *testing.T) {
	var g Grid
	g[0][0] = 5
	assert.True(t, strings.HasPrefix(g.String(), "5........\n"))
	assert.True(t, strings.HasPrefix(g.Flat(), "5"))
	assert.Equal(t, N*N, len(g.Flat()))
}
