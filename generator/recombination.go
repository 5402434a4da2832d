package generator

import (
	log "github.com/sirupsen/logrus"
)

// generatePartitions splits each current ancestor into half-grid pairs
// ("gametes") and keeps a varied selection of them as merge material.
func (g *Generator) generatePartitions(partitionsPerParent int, seed uint64) []*Attempt {
	var partitions []*Attempt
	for _, parent := range g.currentAncestors {
		parentSeed := seed + uint64(int64(parent.summaryScore))
		for i := 0; i < partitionsPerParent; i++ {
			if parent.grid.CountPlacedWords() <= 1 {
				break
			}
			copied := parent.Clone()
			otherHalf, err := copied.grid.RandomPartition(parentSeed + uint64(i))
			if err != nil {
				continue
			}
			copied.incrementMoveCount(MovePartition)
			half := newAttempt(otherHalf, g.settings)
			half.moveCounts[MovePartition] = copied.moveCounts[MovePartition]
			partitions = append(partitions,
				half, newAttempt(copied.grid, g.settings))
		}
	}
	return g.pickBestVaried(partitions, g.settings.NumPerGeneration*2, ancestorRank)
}

// performRecombination merges pairs of gametes back into larger grids
// and adds the successes to the ancestor pool. Each gamete demands one
// more overlap than its previous successful merge, so repeated pairings
// of the same half must keep improving to be kept.
func (g *Generator) performRecombination(seed uint64) {
	gametes := g.generatePartitions(10, seed)

	var recombined []*Attempt
	for firstIndex := range gametes {
		minOverlaps := 1
		for secondIndex := 0; secondIndex < firstIndex; secondIndex++ {
			first := gametes[firstIndex].Clone()
			second := gametes[secondIndex]
			if !first.grid.TryMergeWithGrid(second.grid, minOverlaps) {
				continue
			}
			log.Infof("Successful recombination with at least %d overlaps\n%s\n%s",
				minOverlaps, second.grid.Render(), first.grid.Render())
			first.incrementMoveCount(MoveRecombination)
			recombined = append(recombined, newScoredAttempt(first, g.settings))
			minOverlaps++
		}
		if minOverlaps == 1 {
			log.Debugf("Failed to find grid to recombine with\n%s", gametes[firstIndex].grid.Render())
		}
	}

	g.currentAncestors = append(g.currentAncestors, recombined...)
}

// newScoredAttempt rescores an attempt whose grid was mutated after
// construction, keeping its move counts.
func newScoredAttempt(a *Attempt, settings Settings) *Attempt {
	rescored := newAttempt(a.grid, settings)
	rescored.moveCounts = a.moveCounts
	return rescored
}
