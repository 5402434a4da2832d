package grid

import "fmt"

// NoWord is the word-id value meaning "no owner on this axis".
const NoWord = -1

type fillStatus int

const (
	fillEmpty fillStatus = iota
	fillBlack
	fillLetter
)

// Cell is the state of one board coordinate. A cell is empty, a boundary
// (forced blank just before a word's start or after its end), or filled
// with a letter owned by up to one Across and one Down word.
//
// Once a letter is written it never changes while any owner remains; an
// intersection is a cell owned on both axes.
type Cell struct {
	status   fillStatus
	letter   rune
	acrossID int
	downID   int
}

func emptyCell() Cell {
	return Cell{status: fillEmpty, acrossID: NoWord, downID: NoWord}
}

func letterCell(letter rune, acrossID, downID int) Cell {
	return Cell{status: fillLetter, letter: letter, acrossID: acrossID, downID: downID}
}

// IsEmpty reports whether the cell holds nothing at all.
func (c Cell) IsEmpty() bool { return c.status == fillEmpty }

// IsBlack reports whether the cell is a derived boundary cell.
func (c Cell) IsBlack() bool { return c.status == fillBlack }

// HasLetter reports whether the cell holds a letter.
func (c Cell) HasLetter() bool { return c.status == fillLetter }

// IsIntersection reports whether the cell is owned by both an Across and a
// Down word.
func (c Cell) IsIntersection() bool {
	return c.HasLetter() && c.acrossID != NoWord && c.downID != NoWord
}

// WordID returns the id of the word owning this cell along dir, or NoWord.
func (c Cell) WordID(dir Direction) int {
	if !c.HasLetter() {
		return NoWord
	}
	if dir == Across {
		return c.acrossID
	}
	return c.downID
}

// Char returns the cell's letter, or ' ' for empty and boundary cells.
func (c Cell) Char() rune {
	if c.HasLetter() {
		return c.letter
	}
	return ' '
}

func (c *Cell) setBlack() { *c = Cell{status: fillBlack, acrossID: NoWord, downID: NoWord} }
func (c *Cell) setEmpty() { *c = emptyCell() }

// addWord writes letter into the cell as part of word wordID running along
// dir. The existing perpendicular owner is kept. Returns a placement error
// if the cell is a boundary, holds a different letter, or already belongs
// to a different word on the same axis.
func (c *Cell) addWord(wordID int, letter rune, dir Direction) error {
	switch c.status {
	case fillBlack:
		return fmt.Errorf("%w: letter %q", ErrCellIsBoundary, letter)
	case fillLetter:
		existing := c.WordID(dir)
		if existing != NoWord && existing != wordID {
			return fmt.Errorf("%w: existing %d, new %d", ErrCellWordIDMismatch, existing, wordID)
		}
		if c.letter != letter {
			return fmt.Errorf("%w: existing %q, new %q", ErrCellLetterMismatch, c.letter, letter)
		}
	}
	c.letter = letter
	c.status = fillLetter
	if dir == Across {
		c.acrossID = wordID
	} else {
		c.downID = wordID
	}
	return nil
}

// removeWord drops wordID's ownership of the cell. The cell reverts to
// empty once no owner remains.
func (c *Cell) removeWord(wordID int) {
	if !c.HasLetter() {
		return
	}
	if c.acrossID == wordID {
		c.acrossID = NoWord
	}
	if c.downID == wordID {
		c.downID = NoWord
	}
	if c.acrossID == NoWord && c.downID == NoWord {
		c.setEmpty()
	}
}

// renameWord rewrites ownership of oldID to newID on either axis.
func (c *Cell) renameWord(oldID, newID int) {
	if c.acrossID == oldID {
		c.acrossID = newID
	}
	if c.downID == oldID {
		c.downID = newID
	}
}
