package grid

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// wordsPlacedCompatible reports whether no word id is placed in both
// grids. Recombination only ever merges grids whose placed word sets are
// disjoint halves of the same word table.
func (g *CrosswordGrid) wordsPlacedCompatible(other *CrosswordGrid) bool {
	for _, id := range g.PlacedWordIDs() {
		if w, ok := other.words[id]; ok && w.IsPlaced() {
			return false
		}
	}
	return true
}

// MergeWithGrid physically unions other into this grid at the given
// board-coordinate offset: the board grows to cover both, every placed
// word of other is re-placed through the ordinary placement path, and
// the whole board is re-validated at the end.
//
// The offset must have passed the raster compatibility check, which
// provably rules out letter and boundary conflicts, so a cell-level
// placement failure here is an engine bug and panics. Adjacency is the
// check the raster heuristic can miss (two parallel same-axis words one
// cell apart); that failure mode returns
// ErrAdjacentCellsNoLinkWord / ErrAdjacentCellsMismatchedLinkWord and
// leaves the grid partially merged, so callers merge into a clone.
func (g *CrosswordGrid) MergeWithGrid(other *CrosswordGrid, rowShift, colShift int) error {
	if !other.BlackCellsValid() {
		panic("grid: merge source has stale boundary cells")
	}
	g.growToFitMerge(other, rowShift, colShift)
	g.fillBlackCells()

	for _, id := range other.PlacedWordIDs() {
		otherWord := other.words[id]
		start, _, dir, _ := otherWord.Placement()
		thisWord, ok := g.words[id]
		if !ok || thisWord.IsPlaced() {
			panic(fmt.Sprintf("grid: merge target has no unplaced word %d", id))
		}
		shifted := start.Offset(rowShift, colShift)
		if err := g.placeWord(shifted, id, 0, dir, false); err != nil {
			panic(fmt.Sprintf("grid: merge placement of word %d (%s) at %v failed after raster pre-check: %v",
				id, otherWord.text, shifted, err))
		}
	}
	if err := g.CheckAllWordPlacementsValid(); err != nil {
		// The documented gap in the raster heuristic.
		return err
	}
	g.CheckValid()
	return nil
}

func (g *CrosswordGrid) growToFitMerge(other *CrosswordGrid, rowShift, colShift int) {
	minRow := min(other.topLeft.Row+rowShift, g.topLeft.Row)
	minCol := min(other.topLeft.Col+colShift, g.topLeft.Col)
	maxRow := max(other.bottomRight.Row+rowShift, g.bottomRight.Row)
	maxCol := max(other.bottomRight.Col+colShift, g.bottomRight.Col)
	g.expandToFitCell(Location{Row: minRow, Col: minCol})
	g.expandToFitCell(Location{Row: maxRow, Col: maxCol})
}

// TryMergeWithGrid attempts a recombination merge: it rejects grids
// sharing a placed word id, searches for the best probably-compatible
// offset, and requires at least minOverlaps overlapping cells before
// committing. The merge runs against a scratch copy so a configuration
// falling into the raster heuristic's gap is discarded without side
// effects. Reports whether the merge happened.
func (g *CrosswordGrid) TryMergeWithGrid(other *CrosswordGrid, minOverlaps int) bool {
	if !g.wordsPlacedCompatible(other) {
		return false
	}
	rowShift, colShift, overlaps, ok := g.findBestCompatForMerge(other)
	if !ok || overlaps < minOverlaps {
		return false
	}
	merged := g.Clone()
	if err := merged.MergeWithGrid(other, rowShift, colShift); err != nil {
		log.Debugf("discarding probably-compatible merge at (%d,%d): %v", rowShift, colShift, err)
		return false
	}
	*g = *merged
	return true
}
