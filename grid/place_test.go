package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceWordInCellCrossing(t *testing.T) {
	g := mustParse(t, "BEARER")
	id := g.AddUnplacedWord("ROAD", "", nil)

	err := g.PlaceWordInCell(Location{Row: 0, Col: 3}, id, 0, Down)
	require.NoError(t, err)

	w, err := g.Word(id)
	require.NoError(t, err)
	assert.True(t, w.IsPlaced())
	assert.Equal(t, "BEARER\n   O  \n   A  \n   D  \n", g.Render())
	assert.NoError(t, g.CheckAllWordPlacementsValid())
	g.CheckValid()
}

func TestPlaceWordInCellLetterMismatch(t *testing.T) {
	g := mustParse(t, "BEARER")
	id := g.AddUnplacedWord("INNARDS", "", nil)
	before := g.Render()

	// INNARDS' second letter N cannot sit on BEARER's E.
	err := g.PlaceWordInCell(Location{Row: 0, Col: 1}, id, 1, Down)

	assert.ErrorIs(t, err, ErrCellLetterMismatch)
	assert.Equal(t, before, g.Render())
	w, werr := g.Word(id)
	require.NoError(t, werr)
	assert.False(t, w.IsPlaced())
}

func TestPlaceWordInCellAlreadyPlaced(t *testing.T) {
	g := mustParse(t, "BEARER")

	err := g.PlaceWordInCell(Location{Row: 0, Col: 0}, 0, 0, Down)
	assert.ErrorIs(t, err, ErrWordAlreadyPlaced)
}

func TestPlaceWordInCellWordNotFound(t *testing.T) {
	g := mustParse(t, "BEARER")

	err := g.PlaceWordInCell(Location{Row: 0, Col: 0}, 99, 0, Down)
	assert.ErrorIs(t, err, ErrWordNotFound)
}

func TestPlaceWordInCellDirectionNotAllowed(t *testing.T) {
	g := mustParse(t, "BEARER")
	across := Across
	id := g.AddUnplacedWord("ROAD", "", &across)

	err := g.PlaceWordInCell(Location{Row: 0, Col: 3}, id, 0, Down)
	assert.ErrorIs(t, err, ErrWordDirectionNotAllowed)
}

func TestPlaceWordInCellBoundary(t *testing.T) {
	g := mustParse(t, "BEARER")
	id := g.AddUnplacedWord("RED", "", nil)
	before := g.Render()

	// Starting one cell past BEARER's end would write onto its boundary.
	err := g.PlaceWordInCell(Location{Row: 0, Col: 6}, id, 0, Across)

	assert.ErrorIs(t, err, ErrCellIsBoundary)
	assert.Equal(t, before, g.Render())
}

func TestPlaceWordInCellAdjacentNoLinkWord(t *testing.T) {
	g := mustParse(t, "BEE")
	eatID := g.AddUnplacedWord("EAT", "", nil)
	require.NoError(t, g.PlaceWordInCell(Location{Row: 0, Col: 1}, eatID, 0, Down))

	axeID := g.AddUnplacedWord("AXE", "", nil)
	before := g.Render()

	// AXE's X would sit directly under BEE's last E with no shared word.
	err := g.PlaceWordInCell(Location{Row: 1, Col: 1}, axeID, 0, Across)

	assert.ErrorIs(t, err, ErrAdjacentCellsNoLinkWord)
	assert.Equal(t, before, g.Render())
	w, werr := g.Word(axeID)
	require.NoError(t, werr)
	assert.False(t, w.IsPlaced())
}

func TestAdjacentCellsMismatchedLinkWord(t *testing.T) {
	g := mustParse(t, "BEAR")
	ratID := g.AddUnplacedWord("RAT", "", nil)

	// Butt RAT up against BEAR with no boundary cell in between,
	// bypassing the normal validation to set up the invalid state.
	g.expandToFitCell(Location{Row: 0, Col: 8})
	boundary := g.cells[Location{Row: 0, Col: 4}]
	boundary.setEmpty()
	g.cells[Location{Row: 0, Col: 4}] = boundary
	loc := Location{Row: 0, Col: 4}
	for _, c := range "RAT" {
		cell := g.cells[loc]
		require.NoError(t, cell.addWord(ratID, c, Across))
		g.cells[loc] = cell
		loc = loc.Step(1, Across)
	}
	g.words[ratID].place(Location{Row: 0, Col: 4}, Across)

	err := g.checkAdjacentCellsCompatible(Location{Row: 0, Col: 3}, 1, Across)
	assert.ErrorIs(t, err, ErrAdjacentCellsMismatchedLinkWord)
	assert.ErrorIs(t, g.CheckAllWordPlacementsValid(), ErrAdjacentCellsMismatchedLinkWord)
}

func TestPlaceWordInCellSameAxisWordIDMismatch(t *testing.T) {
	g := mustParse(t, "BEARER")
	roadID := g.AddUnplacedWord("ROAD", "", nil)
	require.NoError(t, g.PlaceWordInCell(Location{Row: 0, Col: 3}, roadID, 0, Down))
	before := g.Render()

	// DAMP would start on ROAD's D, but that cell already belongs to
	// ROAD on the vertical axis.
	dampID := g.AddUnplacedWord("DAMP", "", nil)
	err := g.PlaceWordInCell(Location{Row: 3, Col: 3}, dampID, 0, Down)

	assert.ErrorIs(t, err, ErrCellWordIDMismatch)
	assert.Equal(t, before, g.Render())
	assert.NoError(t, g.CheckAllWordPlacementsValid())
	g.CheckValid()
}
