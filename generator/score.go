package generator

import (
	"fmt"

	"github.com/kwren/crossweave/grid"
)

// Score captures the metrics a grid is judged on. Summary is the
// selection score for complete grids; AncestorSummary additionally
// rewards raw placed-word count so partial grids keep acquiring words
// before density matters.
type Score struct {
	TotalCells              float64
	NonSquarePenalty        float64
	ProportionFilled        float64
	ProportionIntersections float64
	WordsPlaced             float64
	WordsUnplaced           float64
	FilledCells             float64
	NumCycles               float64
	NumIntersections        float64
	AvgIntersections        float64
	AncestorSummary         float64
	Summary                 float64
}

func scoreGrid(g *grid.CrosswordGrid, settings Settings) Score {
	rows, cols := g.Dimensions()
	totalCells := rows * cols
	longest := rows
	if cols > longest {
		longest = cols
	}
	nonSquarePenalty := longest*longest - totalCells

	filledCells := float64(g.CountFilledCells())
	proportionFilled := 0.0
	if totalCells > 0 {
		proportionFilled = filledCells / float64(totalCells)
	}
	numIntersections := float64(g.CountIntersections())
	doubleCountedFilled := filledCells + numIntersections
	proportionIntersections := 0.0
	if doubleCountedFilled > 0 {
		proportionIntersections = (numIntersections * 2.0) / doubleCountedFilled
	}
	numCycles := float64(g.ToGraph().CountCycles())
	avgIntersections := g.AverageIntersectionRatio()
	wordsPlaced := float64(g.CountPlacedWords())

	summary := -float64(nonSquarePenalty)*float64(settings.WeightNonSquare) +
		proportionFilled*float64(settings.WeightPropFilled) +
		proportionIntersections*float64(settings.WeightPropIntersect) +
		numCycles*float64(settings.WeightNumCycles) +
		numIntersections*float64(settings.WeightNumIntersect) +
		avgIntersections*float64(settings.WeightAvgIntersect)
	ancestorSummary := summary + wordsPlaced*float64(settings.WeightWordsPlaced)

	return Score{
		TotalCells:              float64(totalCells),
		NonSquarePenalty:        float64(nonSquarePenalty),
		ProportionFilled:        proportionFilled,
		ProportionIntersections: proportionIntersections,
		WordsPlaced:             wordsPlaced,
		WordsUnplaced:           float64(g.CountUnplacedWords()),
		FilledCells:             filledCells,
		NumCycles:               numCycles,
		NumIntersections:        numIntersections,
		AvgIntersections:        avgIntersections,
		AncestorSummary:         ancestorSummary,
		Summary:                 summary,
	}
}

// AverageScores returns the field-by-field mean of scores. It panics on
// an empty slice.
func AverageScores(scores []Score) Score {
	if len(scores) == 0 {
		panic("generator: AverageScores called with no scores")
	}
	var sum Score
	for _, s := range scores {
		sum.TotalCells += s.TotalCells
		sum.NonSquarePenalty += s.NonSquarePenalty
		sum.ProportionFilled += s.ProportionFilled
		sum.ProportionIntersections += s.ProportionIntersections
		sum.WordsPlaced += s.WordsPlaced
		sum.WordsUnplaced += s.WordsUnplaced
		sum.FilledCells += s.FilledCells
		sum.NumCycles += s.NumCycles
		sum.NumIntersections += s.NumIntersections
		sum.AvgIntersections += s.AvgIntersections
		sum.AncestorSummary += s.AncestorSummary
		sum.Summary += s.Summary
	}
	n := float64(len(scores))
	return Score{
		TotalCells:              sum.TotalCells / n,
		NonSquarePenalty:        sum.NonSquarePenalty / n,
		ProportionFilled:        sum.ProportionFilled / n,
		ProportionIntersections: sum.ProportionIntersections / n,
		WordsPlaced:             sum.WordsPlaced / n,
		WordsUnplaced:           sum.WordsUnplaced / n,
		FilledCells:             sum.FilledCells / n,
		NumCycles:               sum.NumCycles / n,
		NumIntersections:        sum.NumIntersections / n,
		AvgIntersections:        sum.AvgIntersections / n,
		AncestorSummary:         sum.AncestorSummary / n,
		Summary:                 sum.Summary / n,
	}
}

func (s Score) String() string {
	return fmt.Sprintf("GridScore[ summary:: %.3f total_cells:: %.0f filled_cells:: %.0f "+
		"non_square_penalty:: %.0f proportion_filled:: %.3f proportion_intersections:: %.3f "+
		"avg_intersections:: %.3f words_placed:: %.0f words_unplaced:: %.0f "+
		"num_cycles:: %.0f num_intersections:: %.0f]",
		s.Summary, s.TotalCells, s.FilledCells,
		s.NonSquarePenalty, s.ProportionFilled, s.ProportionIntersections,
		s.AvgIntersections, s.WordsPlaced, s.WordsUnplaced,
		s.NumCycles, s.NumIntersections)
}
