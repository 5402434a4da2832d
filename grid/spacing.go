package grid

// Board resizing. The bounding box tracks every cell entry; expansion adds
// whole empty rows/columns, shrinking removes them, and FitToSize restores
// the exactly-one-buffer-row/column invariant around the occupied region.

func (g *CrosswordGrid) expandToFitCell(loc Location) {
	for loc.Row < g.topLeft.Row {
		g.addEmptyRow(g.topLeft.Row - 1)
	}
	for loc.Row > g.bottomRight.Row {
		g.addEmptyRow(g.bottomRight.Row + 1)
	}
	for loc.Col < g.topLeft.Col {
		g.addEmptyCol(g.topLeft.Col - 1)
	}
	for loc.Col > g.bottomRight.Col {
		g.addEmptyCol(g.bottomRight.Col + 1)
	}
}

func (g *CrosswordGrid) addEmptyRow(row int) {
	for col := g.topLeft.Col; col <= g.bottomRight.Col; col++ {
		g.cells[Location{Row: row, Col: col}] = emptyCell()
	}
	if row > g.bottomRight.Row {
		g.bottomRight.Row = row
	} else if row < g.topLeft.Row {
		g.topLeft.Row = row
	}
}

func (g *CrosswordGrid) addEmptyCol(col int) {
	for row := g.topLeft.Row; row <= g.bottomRight.Row; row++ {
		g.cells[Location{Row: row, Col: col}] = emptyCell()
	}
	if col > g.bottomRight.Col {
		g.bottomRight.Col = col
	} else if col < g.topLeft.Col {
		g.topLeft.Col = col
	}
}

func (g *CrosswordGrid) removeRow(row int) {
	for col := g.topLeft.Col; col <= g.bottomRight.Col; col++ {
		delete(g.cells, Location{Row: row, Col: col})
	}
	if row == g.bottomRight.Row {
		g.bottomRight.Row--
	} else if row == g.topLeft.Row {
		g.topLeft.Row++
	}
}

func (g *CrosswordGrid) removeCol(col int) {
	for row := g.topLeft.Row; row <= g.bottomRight.Row; row++ {
		delete(g.cells, Location{Row: row, Col: col})
	}
	if col == g.bottomRight.Col {
		g.bottomRight.Col--
	} else if col == g.topLeft.Col {
		g.topLeft.Col++
	}
}

func (g *CrosswordGrid) countLettersInRow(row int) int {
	n := 0
	for col := g.topLeft.Col; col <= g.bottomRight.Col; col++ {
		if g.mustCell(Location{Row: row, Col: col}).HasLetter() {
			n++
		}
	}
	return n
}

func (g *CrosswordGrid) countLettersInCol(col int) int {
	n := 0
	for row := g.topLeft.Row; row <= g.bottomRight.Row; row++ {
		if g.mustCell(Location{Row: row, Col: col}).HasLetter() {
			n++
		}
	}
	return n
}

func (g *CrosswordGrid) ensureBufferExists() {
	if g.countLettersInRow(g.topLeft.Row) > 0 {
		g.addEmptyRow(g.topLeft.Row - 1)
	}
	if g.countLettersInRow(g.bottomRight.Row) > 0 {
		g.addEmptyRow(g.bottomRight.Row + 1)
	}
	if g.countLettersInCol(g.topLeft.Col) > 0 {
		g.addEmptyCol(g.topLeft.Col - 1)
	}
	if g.countLettersInCol(g.bottomRight.Col) > 0 {
		g.addEmptyCol(g.bottomRight.Col + 1)
	}
}

func (g *CrosswordGrid) removeExcessEmpty() {
	for g.topLeft.Row+1 < g.bottomRight.Row && g.countLettersInRow(g.topLeft.Row+1) == 0 {
		g.removeRow(g.topLeft.Row)
	}
	for g.bottomRight.Row-1 > g.topLeft.Row && g.countLettersInRow(g.bottomRight.Row-1) == 0 {
		g.removeRow(g.bottomRight.Row)
	}
	for g.topLeft.Col+1 < g.bottomRight.Col && g.countLettersInCol(g.topLeft.Col+1) == 0 {
		g.removeCol(g.topLeft.Col)
	}
	for g.bottomRight.Col-1 > g.topLeft.Col && g.countLettersInCol(g.bottomRight.Col-1) == 0 {
		g.removeCol(g.bottomRight.Col)
	}
}

// FitToSize trims or grows the board so that exactly one empty row and
// column surround the occupied region on every side. Idempotent: a second
// call is a no-op.
func (g *CrosswordGrid) FitToSize() {
	g.ensureBufferExists()
	g.removeExcessEmpty()
}
