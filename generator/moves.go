package generator

import "math/rand/v2"

// MoveType labels the mutation applied to a grid attempt. PlaceWord and
// PruneLeaves are drawn at random during child production; Partition and
// Recombination are applied structurally and only counted.
type MoveType int

const (
	MovePlaceWord MoveType = iota
	MovePruneLeaves
	MovePartition
	MoveRecombination
)

func (m MoveType) String() string {
	switch m {
	case MovePlaceWord:
		return "place-word"
	case MovePruneLeaves:
		return "prune-leaves"
	case MovePartition:
		return "partition"
	case MoveRecombination:
		return "recombination"
	default:
		return "unknown"
	}
}

// weightedMoveTypes repeats each random move type by its weight so a
// uniform index choice realises the weighting.
func weightedMoveTypes(placeWeight, pruneWeight int) []MoveType {
	moves := make([]MoveType, 0, placeWeight+pruneWeight)
	for i := 0; i < placeWeight; i++ {
		moves = append(moves, MovePlaceWord)
	}
	for i := 0; i < pruneWeight; i++ {
		moves = append(moves, MovePruneLeaves)
	}
	return moves
}

func (g *Generator) chooseRandomMoveType(seed uint64) MoveType {
	rng := rand.New(rand.NewPCG(g.settings.Seed+seed, 0))
	return g.settings.moveTypes[rng.IntN(len(g.settings.moveTypes))]
}
