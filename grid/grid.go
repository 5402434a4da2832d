package grid

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/kwren/crossweave/wordgraph"
)

// CrosswordGrid owns a sparse cell board and a word table. The bounding
// box (topLeft..bottomRight inclusive) always covers every cell entry;
// after FitToSize has run it includes exactly one empty buffer row/column
// on every side of the occupied region.
type CrosswordGrid struct {
	cells       map[Location]Cell
	words       map[int]*Word
	topLeft     Location
	bottomRight Location
}

// NewSingleWord builds a grid containing just the given answer, placed
// Across at the origin, with the buffer fitted around it.
func NewSingleWord(text string) *CrosswordGrid {
	g, err := ParseGrid(text)
	if err != nil {
		// A bare word line cannot fail to parse.
		panic(fmt.Sprintf("grid: NewSingleWord(%q): %v", text, err))
	}
	return g
}

// newSinglePlaced builds a grid from a prepared word table with exactly
// one word placed at the origin along dir; every other word stays
// unplaced. The word table is deep-copied.
func newSinglePlaced(wordID int, dir Direction, words map[int]*Word) *CrosswordGrid {
	g := &CrosswordGrid{
		cells: make(map[Location]Cell),
		words: make(map[int]*Word),
	}
	for id, w := range words {
		g.words[id] = w.clone()
	}
	w, ok := g.words[wordID]
	if !ok {
		panic(fmt.Sprintf("grid: newSinglePlaced: word %d not in table", wordID))
	}
	acrossID, downID := NoWord, NoWord
	if dir == Across {
		acrossID = wordID
	} else {
		downID = wordID
	}
	loc := Location{}
	for _, c := range w.text {
		g.cells[loc] = letterCell(c, acrossID, downID)
		loc = loc.Step(1, dir)
	}
	w.place(Location{}, dir)
	g.topLeft = Location{}
	g.bottomRight = loc.Step(-1, dir)
	g.FitToSize()
	g.fillBlackCells()
	return g
}

// Clone returns a deep copy: mutating the copy never disturbs the
// original. Attempts in the generator branch by cloning before every
// speculative mutation.
func (g *CrosswordGrid) Clone() *CrosswordGrid {
	c := &CrosswordGrid{
		cells:       make(map[Location]Cell, len(g.cells)),
		words:       make(map[int]*Word, len(g.words)),
		topLeft:     g.topLeft,
		bottomRight: g.bottomRight,
	}
	for loc, cell := range g.cells {
		c.cells[loc] = cell
	}
	for id, w := range g.words {
		c.words[id] = w.clone()
	}
	return c
}

// Bounds returns the inclusive bounding-box corners.
func (g *CrosswordGrid) Bounds() (topLeft, bottomRight Location) {
	return g.topLeft, g.bottomRight
}

// CellAt returns the cell at loc. ok is false when loc has no entry.
func (g *CrosswordGrid) CellAt(loc Location) (Cell, bool) {
	c, ok := g.cells[loc]
	return c, ok
}

func (g *CrosswordGrid) cellAt(loc Location) (Cell, error) {
	c, ok := g.cells[loc]
	if !ok {
		return Cell{}, fmt.Errorf("%w: %v", ErrCellNotFound, loc)
	}
	return c, nil
}

func (g *CrosswordGrid) mustCell(loc Location) Cell {
	c, ok := g.cells[loc]
	if !ok {
		panic(fmt.Sprintf("grid: cell missing inside bounding box at %v", loc))
	}
	return c
}

// Word returns the word with the given id.
func (g *CrosswordGrid) Word(id int) (*Word, error) {
	w, ok := g.words[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrWordNotFound, id)
	}
	return w, nil
}

// WordIDs returns every word id, placed or not, in ascending order.
func (g *CrosswordGrid) WordIDs() []int {
	ids := make([]int, 0, len(g.words))
	for id := range g.words {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// PlacedWordIDs returns the ids of placed words in ascending order.
func (g *CrosswordGrid) PlacedWordIDs() []int {
	var ids []int
	for id, w := range g.words {
		if w.IsPlaced() {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

func (g *CrosswordGrid) lowestUnusedWordID() int {
	id := 0
	for {
		if _, used := g.words[id]; !used {
			return id
		}
		id++
	}
}

// AddUnplacedWord inserts an unplaced word under the lowest unused
// non-negative id and returns that id.
func (g *CrosswordGrid) AddUnplacedWord(text, clue string, requiredDir *Direction) int {
	id := g.lowestUnusedWordID()
	g.AddUnplacedWordAtID(text, clue, id, requiredDir)
	return id
}

// AddUnplacedWordAtID inserts an unplaced word under an explicit id,
// replacing any word already there. The answer is sanitized to uppercase
// letters. Used when two grids must agree on which id names "the same"
// word before a merge.
func (g *CrosswordGrid) AddUnplacedWordAtID(text, clue string, id int, requiredDir *Direction) {
	g.words[id] = NewWord(SanitizeAnswer(text), clue, requiredDir)
}

// UpdateWordID renames a word, rewriting cell ownership to match.
func (g *CrosswordGrid) UpdateWordID(oldID, newID int) error {
	w, ok := g.words[oldID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrWordNotFound, oldID)
	}
	delete(g.words, oldID)
	g.words[newID] = w
	for loc, cell := range g.cells {
		cell.renameWord(oldID, newID)
		g.cells[loc] = cell
	}
	return nil
}

// UnplaceWord removes the word's letters from the board but keeps it in
// the word table for future placement. Boundary cells are re-derived and
// the bounding box re-shrunk.
func (g *CrosswordGrid) UnplaceWord(id int) {
	for loc, cell := range g.cells {
		cell.removeWord(id)
		g.cells[loc] = cell
	}
	if w, ok := g.words[id]; ok {
		w.removePlacement()
	}
	g.FitToSize()
	g.fillBlackCells()
	log.Debugf("unplaced word %d, %d placed words remain", id, len(g.PlacedWordIDs()))
}

// DeleteWord unplaces the word and drops it from the word table.
func (g *CrosswordGrid) DeleteWord(id int) {
	g.UnplaceWord(id)
	delete(g.words, id)
}

// ToGraph builds the word-intersection graph: one node per placed word,
// one edge per intersection cell. The graph is a disposable view,
// rebuilt on demand.
func (g *CrosswordGrid) ToGraph() *wordgraph.Graph {
	var edges [][2]int
	for _, loc := range g.sortedCellLocations() {
		cell := g.cells[loc]
		if cell.IsIntersection() {
			edges = append(edges, [2]int{cell.acrossID, cell.downID})
		}
	}
	graph := wordgraph.NewFromEdges(edges)
	for _, id := range g.PlacedWordIDs() {
		graph.AddNode(id)
	}
	return graph
}

func (g *CrosswordGrid) sortedCellLocations() []Location {
	locs := make([]Location, 0, len(g.cells))
	for loc := range g.cells {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool {
		if locs[i].Row != locs[j].Row {
			return locs[i].Row < locs[j].Row
		}
		return locs[i].Col < locs[j].Col
	})
	return locs
}

// Render returns the grid interior (bounding box minus the buffer) as
// newline-separated rows, letters for filled cells and spaces otherwise.
// Two grids with equal renderings are considered the same candidate by
// the generator's dedupe step.
func (g *CrosswordGrid) Render() string {
	var b strings.Builder
	for row := g.topLeft.Row + 1; row < g.bottomRight.Row; row++ {
		for col := g.topLeft.Col + 1; col < g.bottomRight.Col; col++ {
			b.WriteRune(g.mustCell(Location{Row: row, Col: col}).Char())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// CheckValid asserts the structural invariants: the bounding box is
// well-formed and fully backed by cells, every cell owner exists in the
// word table, and the placed words form one connected component. A
// violation is an engine defect, so CheckValid panics rather than
// returning an error.
func (g *CrosswordGrid) CheckValid() {
	if g.topLeft.Row > g.bottomRight.Row || g.topLeft.Col > g.bottomRight.Col {
		panic(fmt.Sprintf("grid: inverted bounding box %v..%v", g.topLeft, g.bottomRight))
	}
	for row := g.topLeft.Row; row <= g.bottomRight.Row; row++ {
		for col := g.topLeft.Col; col <= g.bottomRight.Col; col++ {
			g.mustCell(Location{Row: row, Col: col})
		}
	}
	for loc, cell := range g.cells {
		for _, dir := range []Direction{Across, Down} {
			if id := cell.WordID(dir); id != NoWord {
				if _, ok := g.words[id]; !ok {
					panic(fmt.Sprintf("grid: cell %v references missing word %d", loc, id))
				}
			}
		}
	}
	if !g.ToGraph().IsConnected() {
		panic(fmt.Sprintf("grid: disconnected grid\n%s", g.Render()))
	}
}
