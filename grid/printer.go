package grid

import (
	"fmt"
	"strings"
)

// The read-only rendering contract. External printers consume the grid
// through RenderCells alone: per cell its letter (space when empty or
// boundary) plus, on the first cell of each word, a clue number assigned
// in row-major order.

// RenderCell is one cell of the render contract.
type RenderCell struct {
	Location   Location
	Char       rune
	ClueNumber int // 0 when the cell starts no word
	AcrossID   int // NoWord when no across word owns the cell
	DownID     int // NoWord when no down word owns the cell
}

// Clue pairs a numbered word with its text for the clue lists.
type Clue struct {
	Number    int
	Direction Direction
	Answer    string
	ClueText  string
}

// RenderCells walks the grid interior row-major and returns the cell
// matrix plus the across and down clue lists. Clue numbers increase
// monotonically; a cell starting both an across and a down word gets a
// single number shared by both clues.
func (g *CrosswordGrid) RenderCells() (cells [][]RenderCell, across, down []Clue) {
	lastClueNumber := 0
	for row := g.topLeft.Row + 1; row < g.bottomRight.Row; row++ {
		var line []RenderCell
		for col := g.topLeft.Col + 1; col < g.bottomRight.Col; col++ {
			loc := Location{Row: row, Col: col}
			cell := g.mustCell(loc)
			rc := RenderCell{
				Location: loc,
				Char:     cell.Char(),
				AcrossID: cell.WordID(Across),
				DownID:   cell.WordID(Down),
			}
			acrossStarts := g.wordStartsAt(rc.AcrossID, loc)
			downStarts := g.wordStartsAt(rc.DownID, loc)
			if acrossStarts || downStarts {
				lastClueNumber++
				rc.ClueNumber = lastClueNumber
			}
			if acrossStarts {
				w := g.words[rc.AcrossID]
				across = append(across, Clue{Number: lastClueNumber, Direction: Across, Answer: w.text, ClueText: w.clue})
			}
			if downStarts {
				w := g.words[rc.DownID]
				down = append(down, Clue{Number: lastClueNumber, Direction: Down, Answer: w.text, ClueText: w.clue})
			}
			line = append(line, rc)
		}
		cells = append(cells, line)
	}
	return cells, across, down
}

func (g *CrosswordGrid) wordStartsAt(id int, loc Location) bool {
	if id == NoWord {
		return false
	}
	start, _, _, placed := g.words[id].Placement()
	return placed && start == loc
}

// Printer typesets a finished grid as LaTeX source using the cwpuzzle
// package. When ObscureAnswers is set the clue lists omit answer text.
type Printer struct {
	Grid           *CrosswordGrid
	ObscureAnswers bool
}

const (
	documentStart = "\\documentclass{article}\n\\usepackage[unboxed]{cwpuzzle}\n\n" +
		"\\newcommand{\\CrosswordClue}[3]{\\textbf{#1} \\quad #3 \\\\}\n\\begin{document}\n"
	documentEnd = "\n\n\\end{document}"
)

// Print renders the complete LaTeX document.
func (p *Printer) Print() string {
	cells, across, down := p.Grid.RenderCells()
	rows, cols := p.Grid.Dimensions()

	var b strings.Builder
	b.WriteString(documentStart)
	fmt.Fprintf(&b, "\\begin{Puzzle}{%d}{%d}\n", cols, rows)
	for _, line := range cells {
		for _, rc := range line {
			switch {
			case rc.Char == ' ':
				b.WriteString("|*")
			case rc.ClueNumber > 0:
				fmt.Fprintf(&b, "|[%d]%c", rc.ClueNumber, rc.Char)
			default:
				fmt.Fprintf(&b, "|%c", rc.Char)
			}
		}
		b.WriteString("|.\n")
	}
	b.WriteString("\\end{Puzzle}\n\n")

	b.WriteString("\\section*{Across}\n")
	p.writeClues(&b, across)
	b.WriteString("\n\\section*{Down}\n")
	p.writeClues(&b, down)
	b.WriteString(documentEnd)
	return b.String()
}

func (p *Printer) writeClues(b *strings.Builder, clues []Clue) {
	for _, clue := range clues {
		answer := clue.Answer
		if p.ObscureAnswers {
			answer = ""
		}
		fmt.Fprintf(b, "\\CrosswordClue{%d}{%s}{%s}\n", clue.Number, answer, clue.ClueText)
	}
}
