package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countBlack(g *CrosswordGrid) int {
	n := 0
	for _, cell := range g.cells {
		if cell.IsBlack() {
			n++
		}
	}
	return n
}

func TestFillBlackCells(t *testing.T) {
	g := NewSingleWord("ALPHA")
	g.FitToSize()
	g.fillBlackCells()

	assert.Equal(t, 2, countBlack(g))

	// Boundary cells sit one step before the start and after the end.
	for _, loc := range []Location{{Row: 0, Col: -1}, {Row: 0, Col: 5}} {
		cell, ok := g.CellAt(loc)
		require.True(t, ok)
		assert.True(t, cell.IsBlack(), "cell %v should be black", loc)
	}
	assert.True(t, g.BlackCellsValid())
}

func TestFillBlackCellsSharedBoundary(t *testing.T) {
	// CAT's end boundary and DOG's start boundary are the same cell.
	g := mustParse(t, "CAT DOG\nA     U\nBEE SUG\n")

	// 4 across and 2 down words, 12 boundary positions, 2 shared.
	assert.Equal(t, 10, countBlack(g))
	assert.True(t, g.BlackCellsValid())
}

func TestFillBlackCellsClearsStaleMarkers(t *testing.T) {
	g := mustParse(t, "BEARER")
	id := g.AddUnplacedWord("ROAD", "", nil)
	require.NoError(t, g.PlaceWordInCell(Location{Row: 0, Col: 3}, id, 0, Down))
	require.Equal(t, 4, countBlack(g))

	g.UnplaceWord(id)

	assert.Equal(t, 2, countBlack(g))
	assert.True(t, g.BlackCellsValid())
}

func TestExpectedBlackCells(t *testing.T) {
	g := NewSingleWord("ALPHA")

	expected := g.expectedBlackCells()
	assert.ElementsMatch(t,
		[]Location{{Row: 0, Col: -1}, {Row: 0, Col: 5}}, expected)
}

func TestCheckAllWordPlacementsValidOnValidGrid(t *testing.T) {
	g := mustParse(t, crossedFixture)
	assert.NoError(t, g.CheckAllWordPlacementsValid())
}
