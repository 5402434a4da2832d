package generator

import "github.com/kwren/crossweave/grid"

// Attempt pairs a grid with its score. The integer score copies exist
// so selection and seed derivation work on exact values rather than
// floats.
type Attempt struct {
	grid          *grid.CrosswordGrid
	Score         Score
	summaryScore  int
	ancestorScore int
	moveCounts    map[MoveType]int
}

func newAttempt(g *grid.CrosswordGrid, settings Settings) *Attempt {
	score := scoreGrid(g, settings)
	return &Attempt{
		grid:          g,
		Score:         score,
		summaryScore:  int(score.Summary),
		ancestorScore: int(score.AncestorSummary),
		moveCounts:    make(map[MoveType]int),
	}
}

// Grid returns the attempt's grid. Callers must not mutate it; use
// Clone for exploratory changes.
func (a *Attempt) Grid() *grid.CrosswordGrid { return a.grid }

// Clone deep-copies the attempt so mutations can be explored without
// disturbing the original.
func (a *Attempt) Clone() *Attempt {
	counts := make(map[MoveType]int, len(a.moveCounts))
	for k, v := range a.moveCounts {
		counts[k] = v
	}
	return &Attempt{
		grid:          a.grid.Clone(),
		Score:         a.Score,
		summaryScore:  a.summaryScore,
		ancestorScore: a.ancestorScore,
		moveCounts:    counts,
	}
}

func (a *Attempt) incrementMoveCount(move MoveType) {
	a.moveCounts[move]++
}

// MoveCount reports how many times the given move shaped this attempt's
// lineage.
func (a *Attempt) MoveCount(move MoveType) int { return a.moveCounts[move] }
