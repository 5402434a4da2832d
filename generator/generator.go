package generator

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/kwren/crossweave/grid"
)

// Generator runs the evolutionary search. Construct it with
// NewFromWordList or NewFromWordEntries, then call Generate.
type Generator struct {
	currentAncestors []*Attempt
	nextAncestors    []*Attempt
	currentComplete  []*Attempt
	nextComplete     []*Attempt
	round            int
	settings         Settings
}

// NewFromWordList parses `answer|clue|direction` lines (see
// grid.ParseWordList) and seeds the generation-0 population with one
// singleton grid per word.
func NewFromWordList(contents string, overrides map[string]int) (*Generator, error) {
	entries, err := grid.ParseWordList(contents)
	if err != nil {
		return nil, err
	}
	return NewFromWordEntries(entries, overrides), nil
}

// NewFromWordEntries seeds the generation-0 ancestor population with
// one singleton grid per entry, orientation chosen by seed unless the
// entry forces one.
func NewFromWordEntries(entries []grid.WordEntry, overrides map[string]int) *Generator {
	settings := NewSettings(overrides)
	singletons := grid.RandomSingletonGrids(entries, settings.Seed)
	ancestors := make([]*Attempt, 0, len(singletons))
	for _, g := range singletons {
		ancestors = append(ancestors, newAttempt(g, settings))
	}
	if len(ancestors) > 0 {
		log.Infof("First of first generation is\n%s", ancestors[0].grid.Render())
	}
	return &Generator{
		currentAncestors: ancestors,
		settings:         settings,
	}
}

// Settings returns the effective settings after defaults were applied.
func (g *Generator) Settings() Settings { return g.settings }

// produceChild applies up to MovesBetweenScores random moves to a copy
// of the parent, stopping early once a move fails.
func (g *Generator) produceChild(parent *Attempt, seed uint64) *Attempt {
	copied := parent.grid.Clone()
	applied := make(map[MoveType]int)
	success := true
	for moves := 0; success && moves < g.settings.MovesBetweenScores; moves++ {
		extendedSeed := seed + uint64(moves)
		move := g.chooseRandomMoveType(extendedSeed)
		log.Debugf("Picked move %s", move)
		switch move {
		case MovePlaceWord:
			success = copied.PlaceRandomWord(extendedSeed)
		case MovePruneLeaves:
			copied.RemoveRandomLeaves(1, extendedSeed)
		}
		applied[move]++
	}
	child := newAttempt(copied, g.settings)
	for k, v := range parent.moveCounts {
		child.moveCounts[k] = v
	}
	for k, v := range applied {
		child.moveCounts[k] += v
	}
	return child
}

// fillGrid greedily places random words on a copy of the parent until
// no placement succeeds.
func (g *Generator) fillGrid(parent *Attempt, seed uint64) *Attempt {
	copied := parent.grid.Clone()
	for moves := uint64(0); copied.PlaceRandomWord(seed + moves); moves++ {
	}
	child := newAttempt(copied, g.settings)
	for k, v := range parent.moveCounts {
		child.moveCounts[k] = v
	}
	return child
}

// dedupeByRender keeps the first attempt for each distinct rendered
// grid, preserving order.
func dedupeByRender(attempts []*Attempt) []*Attempt {
	seen := make(map[string]bool, len(attempts))
	unique := make([]*Attempt, 0, len(attempts))
	for _, a := range attempts {
		key := a.grid.Render()
		if !seen[key] {
			seen[key] = true
			unique = append(unique, a)
		}
	}
	return unique
}

func (g *Generator) nextGeneration() {
	for _, parent := range g.currentAncestors {
		log.Debugf("Considering extensions of grid:\n%s", parent.grid.Render())
		seed := uint64(int64(parent.summaryScore)) + uint64(g.round)
		for childIndex := 0; childIndex < g.settings.NumChildren; childIndex++ {
			child := g.produceChild(parent, seed+uint64(childIndex))
			g.nextAncestors = append(g.nextAncestors, child)
		}

		for i := 0; i < g.settings.NumChildren; i++ {
			if parent.grid.CountPlacedWords() <= 1 {
				continue
			}
			copied := parent.Clone()
			otherHalf, err := copied.grid.RandomPartition(seed + uint64(i))
			if err != nil {
				continue
			}
			copied.incrementMoveCount(MovePartition)
			half := newAttempt(otherHalf, g.settings)
			half.moveCounts[MovePartition] = copied.moveCounts[MovePartition]
			g.nextAncestors = append(g.nextAncestors,
				newAttempt(copied.grid, g.settings), half)
		}
	}

	// Keep the previous generation in the running in case it still
	// scores better than all of its children.
	g.nextAncestors = append(g.nextAncestors, g.currentAncestors...)
	g.currentAncestors = g.pickBestVaried(
		dedupeByRender(g.nextAncestors), g.settings.NumPerGeneration, ancestorRank)
	g.nextAncestors = nil

	g.performRecombination(g.settings.Seed + uint64(g.round))

	for _, parent := range g.currentAncestors {
		seed := uint64(int64(parent.summaryScore))
		for childIndex := 0; childIndex < g.settings.NumChildren; childIndex++ {
			child := g.fillGrid(parent, seed+uint64(childIndex))
			g.nextComplete = append(g.nextComplete, child)
		}
	}

	g.nextComplete = append(g.nextComplete, g.currentComplete...)
	g.currentComplete = g.pickBestVaried(
		dedupeByRender(g.nextComplete), g.settings.NumPerGeneration, summaryRank)
	g.nextComplete = nil
}

func (g *Generator) outputBest(numToOutput int) []*grid.CrosswordGrid {
	out := make([]*grid.CrosswordGrid, 0, numToOutput)
	for _, a := range g.currentComplete {
		if len(out) == numToOutput {
			break
		}
		out = append(out, a.grid.Clone())
	}
	return out
}

func (g *Generator) currentBestScore() int {
	best := 0
	for i, a := range g.currentComplete {
		if i == 0 || a.summaryScore > best {
			best = a.summaryScore
		}
	}
	return best
}

func (g *Generator) averageScores() Score {
	scores := make([]Score, 0, len(g.currentComplete))
	for _, a := range g.currentComplete {
		scores = append(scores, a.Score)
	}
	return AverageScores(scores)
}

// stringifiedOutput renders both populations in order; two rounds with
// identical output have converged.
func (g *Generator) stringifiedOutput() string {
	var b strings.Builder
	for _, a := range g.currentAncestors {
		b.WriteString(a.grid.Render())
		b.WriteString("\n\n")
	}
	for _, a := range g.currentComplete {
		b.WriteString(a.grid.Render())
		b.WriteString("\n\n")
	}
	return b.String()
}

// Generate runs rounds until the population stops changing (checked
// after MinRounds) or MaxRounds is reached, then returns the best
// complete grids.
func (g *Generator) Generate() []*grid.CrosswordGrid {
	converged := false
	lastStringified := g.stringifiedOutput()
	log.Infof("Round %d. Current best score is %d", g.round, g.currentBestScore())

	for !converged && g.round < g.settings.MaxRounds {
		g.nextGeneration()
		if len(g.currentComplete) > 0 {
			log.Infof("Round %d. Average score is %s", g.round, g.averageScores())
		}
		log.Infof("Round %d. Current best score is %d", g.round, g.currentBestScore())

		thisStringified := g.stringifiedOutput()
		if g.round > g.settings.MinRounds {
			converged = thisStringified == lastStringified
		}
		lastStringified = thisStringified
		g.round++
	}
	if converged {
		log.Info("Stopped iterating since the population converged")
	}

	if len(g.currentComplete) > 0 {
		log.Infof("Best final score is: %s", g.currentComplete[0].Score)
	}
	return g.outputBest(g.settings.NumPerGeneration)
}
