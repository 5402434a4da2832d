package grid

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/zyedidia/generic/mapset"
)

// expectedBlackCells lists, for every placed word, the cell one step
// before its start and one step after its end along its own axis.
func (g *CrosswordGrid) expectedBlackCells() []Location {
	var black []Location
	for _, id := range g.PlacedWordIDs() {
		w := g.words[id]
		start, end, dir, _ := w.Placement()
		black = append(black, start.Step(-1, dir), end.Step(1, dir))
	}
	return black
}

// fillBlackCells re-derives every boundary cell from scratch: stale
// markers are cleared first, so removing a word never leaves its old
// boundaries behind.
func (g *CrosswordGrid) fillBlackCells() {
	for loc, cell := range g.cells {
		if cell.IsBlack() {
			cell.setEmpty()
			g.cells[loc] = cell
		}
	}
	for _, loc := range g.expectedBlackCells() {
		cell, ok := g.cells[loc]
		if !ok {
			panic(fmt.Sprintf("grid: boundary cell %v outside board\n%s", loc, g.Render()))
		}
		cell.setBlack()
		g.cells[loc] = cell
	}
}

// BlackCellsValid reports whether the set of boundary cells on the board
// is exactly the set derived from word placements.
func (g *CrosswordGrid) BlackCellsValid() bool {
	expected := mapset.New[Location]()
	for _, loc := range g.expectedBlackCells() {
		expected.Put(loc)
	}
	valid := true
	for loc, cell := range g.cells {
		if cell.IsBlack() && !expected.Has(loc) {
			valid = false
		}
	}
	expected.Each(func(loc Location) {
		cell, ok := g.cells[loc]
		if !ok || !cell.IsBlack() {
			valid = false
		}
	})
	return valid
}

// checkAdjacentCellsCompatible verifies one adjacency: stepping moveBy
// cells from loc along dir, if both cells hold letters they must share
// the same word on that axis. Missing cells are trivially compatible.
func (g *CrosswordGrid) checkAdjacentCellsCompatible(loc Location, moveBy int, dir Direction) error {
	neighborLoc := loc.Step(moveBy, dir)
	cell, err := g.cellAt(loc)
	if err != nil {
		return err
	}
	neighbor, err := g.cellAt(neighborLoc)
	if err != nil {
		return err
	}
	if !cell.HasLetter() || !neighbor.HasLetter() {
		return nil
	}
	cellWord := cell.WordID(dir)
	neighborWord := neighbor.WordID(dir)
	if cellWord == NoWord || neighborWord == NoWord {
		// No matrix-level check can catch this shape; it must be caught here.
		return fmt.Errorf("%w: %v and %v", ErrAdjacentCellsNoLinkWord, loc, neighborLoc)
	}
	if cellWord != neighborWord {
		return fmt.Errorf("%w: %v word %d, %v word %d",
			ErrAdjacentCellsMismatchedLinkWord, loc, cellWord, neighborLoc, neighborWord)
	}
	return nil
}

func (g *CrosswordGrid) checkAllNeighborsCompatible(loc Location) error {
	cell, err := g.cellAt(loc)
	if err != nil {
		return err
	}
	if !cell.HasLetter() {
		return nil
	}
	for _, dir := range []Direction{Across, Down} {
		for _, moveBy := range []int{-1, 1} {
			if err := g.checkAdjacentCellsCompatible(loc, moveBy, dir); err != nil {
				if isCellNotFound(err) {
					// Off-board neighbors are trivially compatible.
					continue
				}
				return err
			}
		}
	}
	return nil
}

// checkAllCellsInWordValid verifies one word's placement end to end: the
// cells just before its start and after its end are letter-free, and
// every cell it occupies is compatible with its neighbors.
func (g *CrosswordGrid) checkAllCellsInWordValid(wordID int) error {
	w, err := g.Word(wordID)
	if err != nil {
		return err
	}
	start, end, dir, placed := w.Placement()
	if !placed {
		return nil
	}
	beforeStart := start.Step(-1, dir)
	if cell, err := g.cellAt(beforeStart); err == nil && cell.HasLetter() {
		return fmt.Errorf("%w: %v before start %v", ErrNonEmptyWordBoundary, beforeStart, start)
	}
	afterEnd := end.Step(1, dir)
	if cell, err := g.cellAt(afterEnd); err == nil && cell.HasLetter() {
		return fmt.Errorf("%w: %v after end %v", ErrNonEmptyWordBoundary, afterEnd, end)
	}
	loc := start
	for i := 0; i < w.len(); i++ {
		if err := g.checkAllNeighborsCompatible(loc); err != nil {
			return err
		}
		loc = loc.Step(1, dir)
	}
	return nil
}

// CheckAllWordPlacementsValid runs the adjacency check for every cell on
// the board. Used by tests and by merges to confirm that the raster-level
// pre-check did not let an invalid overlay through.
func (g *CrosswordGrid) CheckAllWordPlacementsValid() error {
	log.Debugf("checking word placements for grid\n%s", g.Render())
	for _, loc := range g.sortedCellLocations() {
		if err := g.checkAllNeighborsCompatible(loc); err != nil {
			return err
		}
	}
	return nil
}
