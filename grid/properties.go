package grid

// Counting and measurement helpers consumed by the generator's scorer.

// CountAllWords returns the number of words in the table, placed or not.
func (g *CrosswordGrid) CountAllWords() int { return len(g.words) }

// CountPlacedWords returns the number of words with a placement.
func (g *CrosswordGrid) CountPlacedWords() int { return len(g.PlacedWordIDs()) }

// CountUnplacedWords returns the number of words still waiting to be placed.
func (g *CrosswordGrid) CountUnplacedWords() int {
	return len(g.words) - g.CountPlacedWords()
}

// CountFilledCells returns the number of cells holding a letter.
func (g *CrosswordGrid) CountFilledCells() int {
	n := 0
	for _, cell := range g.cells {
		if cell.HasLetter() {
			n++
		}
	}
	return n
}

// CountIntersections returns the number of cells owned on both axes.
func (g *CrosswordGrid) CountIntersections() int {
	n := 0
	for _, cell := range g.cells {
		if cell.IsIntersection() {
			n++
		}
	}
	return n
}

// Dimensions returns the interior size of the grid, excluding the buffer.
func (g *CrosswordGrid) Dimensions() (rows, cols int) {
	rows = g.bottomRight.Row - g.topLeft.Row - 1
	cols = g.bottomRight.Col - g.topLeft.Col - 1
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return rows, cols
}

// DimensionsWithBuffer returns the full bounding-box size including the
// one-cell buffer, the frame the rasterizer works in.
func (g *CrosswordGrid) DimensionsWithBuffer() (rows, cols int) {
	return g.bottomRight.Row - g.topLeft.Row + 1, g.bottomRight.Col - g.topLeft.Col + 1
}

// AverageIntersectionRatio returns the mean, over placed words, of the
// proportion of each word's letters that sit on an intersection. Zero
// when nothing is placed.
func (g *CrosswordGrid) AverageIntersectionRatio() float64 {
	ids := g.PlacedWordIDs()
	if len(ids) == 0 {
		return 0
	}
	var total float64
	for _, id := range ids {
		w := g.words[id]
		start, _, dir, _ := w.Placement()
		intersections := 0
		loc := start
		for i := 0; i < w.len(); i++ {
			if g.mustCell(loc).IsIntersection() {
				intersections++
			}
			loc = loc.Step(1, dir)
		}
		total += float64(intersections) / float64(w.len())
	}
	return total / float64(len(ids))
}
