package grid

import (
	"errors"
	"strings"
)

// ErrEmptyGridText indicates ParseGrid was handed a string with no letters.
var ErrEmptyGridText = errors.New("grid: grid text contains no letters")

// gridParser accumulates parser state while scanning a rendered grid
// row-major: the across word currently being extended, and the down word
// currently being extended in each column.
type gridParser struct {
	cells      map[Location]Cell
	words      map[int]*Word
	acrossID   int
	downIDs    map[int]int
	nextWordID int
	row, col   int
	maxCol     int
	sawLetter  bool
}

// ParseGrid rebuilds a CrosswordGrid from its rendered text: rows of
// letters and spaces, newline separated. Every maximal horizontal run of
// letters becomes an Across word and every vertical run a Down word;
// single-letter fragments are dropped. Rendering the result reproduces
// the input text (modulo trailing blank padding).
func ParseGrid(text string) (*CrosswordGrid, error) {
	p := &gridParser{
		cells:    make(map[Location]Cell),
		words:    make(map[int]*Word),
		acrossID: NoWord,
		downIDs:  make(map[int]int),
	}
	for _, c := range text {
		if c == '\n' {
			p.endRow()
			continue
		}
		p.scan(c)
	}
	if !p.sawLetter {
		return nil, ErrEmptyGridText
	}
	return p.finish(), nil
}

func (p *gridParser) endRow() {
	if p.col > p.maxCol {
		p.maxCol = p.col
	}
	// A short row implicitly ends the down run in every column it never
	// reached; the missing cells are spaces.
	for col := range p.downIDs {
		if col >= p.col {
			p.downIDs[col] = NoWord
		}
	}
	p.row++
	p.col = 0
	p.acrossID = NoWord
}

func (p *gridParser) scan(c rune) {
	loc := Location{Row: p.row, Col: p.col}
	if _, seen := p.downIDs[p.col]; !seen {
		p.downIDs[p.col] = NoWord
	}
	if c == ' ' {
		p.acrossID = NoWord
		p.downIDs[p.col] = NoWord
		p.cells[loc] = emptyCell()
		p.col++
		return
	}
	p.sawLetter = true
	if p.acrossID == NoWord {
		p.acrossID = p.nextWordID
		p.words[p.acrossID] = newPlacedWord(string(c), loc, Across)
		p.nextWordID++
	} else {
		p.words[p.acrossID].extend(c)
	}
	if p.downIDs[p.col] == NoWord {
		p.downIDs[p.col] = p.nextWordID
		p.words[p.nextWordID] = newPlacedWord(string(c), loc, Down)
		p.nextWordID++
	} else {
		p.words[p.downIDs[p.col]].extend(c)
	}
	p.cells[loc] = letterCell(c, p.acrossID, p.downIDs[p.col])
	p.col++
}

func (p *gridParser) finish() *CrosswordGrid {
	if p.col > 0 {
		p.endRow()
	}
	g := &CrosswordGrid{
		cells:       p.cells,
		words:       p.words,
		topLeft:     Location{},
		bottomRight: Location{Row: p.row - 1, Col: p.maxCol - 1},
	}
	// Ragged input rows leave holes in the rectangle; pad them as empty.
	for row := g.topLeft.Row; row <= g.bottomRight.Row; row++ {
		for col := g.topLeft.Col; col <= g.bottomRight.Col; col++ {
			loc := Location{Row: row, Col: col}
			if _, ok := g.cells[loc]; !ok {
				g.cells[loc] = emptyCell()
			}
		}
	}
	// Runs of length one are letter fragments of a perpendicular word,
	// not words in their own right.
	var singletons []int
	for _, id := range g.WordIDs() {
		if g.words[id].len() == 1 {
			singletons = append(singletons, id)
		}
	}
	for _, id := range singletons {
		for loc, cell := range g.cells {
			cell.removeWord(id)
			g.cells[loc] = cell
		}
		delete(g.words, id)
	}
	g.FitToSize()
	g.fillBlackCells()
	return g
}

// RoundTrip is a convenience for tests: render then re-parse.
func RoundTrip(g *CrosswordGrid) (*CrosswordGrid, error) {
	return ParseGrid(strings.TrimRight(g.Render(), "\n"))
}
