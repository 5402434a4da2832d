package grid

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// PlaceWordInCell places word wordID so that its indexInWord-th letter
// lands on anchor, running along dir. On any failure the grid is left
// textually identical to its state before the call and a sentinel error
// from errors.go is returned; most candidate placements produced by the
// search are expected to fail this way.
func (g *CrosswordGrid) PlaceWordInCell(anchor Location, wordID, indexInWord int, dir Direction) error {
	return g.placeWord(anchor, wordID, indexInWord, dir, true)
}

// placeWord is the shared placement path. With validate false the
// per-word adjacency check is skipped; the merge path uses this because
// mid-merge adjacency is order-dependent, and re-validates the whole
// board once every word is in.
func (g *CrosswordGrid) placeWord(anchor Location, wordID, indexInWord int, dir Direction, validate bool) error {
	w, err := g.Word(wordID)
	if err != nil {
		return err
	}
	if w.IsPlaced() {
		return fmt.Errorf("%w: %d", ErrWordAlreadyPlaced, wordID)
	}
	if !w.allowsDirection(dir) {
		return fmt.Errorf("%w: word %d requires %v", ErrWordDirectionNotAllowed, wordID, *w.requiredDir)
	}

	g.FitToSize()
	g.fillBlackCells()

	start := anchor.Step(-indexInWord, dir)
	end := anchor.Step(w.len()-1-indexInWord, dir)
	// Grow the board far enough that the word and both of its boundary
	// cells have entries.
	g.expandToFitCell(start.Step(-1, dir))
	g.expandToFitCell(end.Step(1, dir))

	log.Debugf("placing word %d (%s) %v from %v", wordID, w.text, dir, start)

	var placeErr error
	updated := make([]Location, 0, w.len())
	loc := start
	for i := 0; i < w.len(); i++ {
		cell := g.mustCell(loc)
		if placeErr = cell.addWord(wordID, w.charAt(i), dir); placeErr != nil {
			break
		}
		g.cells[loc] = cell
		updated = append(updated, loc)
		loc = loc.Step(1, dir)
	}

	if placeErr == nil {
		w.place(start, dir)
		if validate {
			if placeErr = g.checkAllCellsInWordValid(wordID); placeErr != nil {
				w.removePlacement()
			}
		}
	}

	if placeErr != nil {
		for _, u := range updated {
			cell := g.mustCell(u)
			cell.removeWord(wordID)
			g.cells[u] = cell
		}
		g.FitToSize()
		g.fillBlackCells()
		return placeErr
	}

	g.FitToSize()
	g.fillBlackCells()
	return nil
}
