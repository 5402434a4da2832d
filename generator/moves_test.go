package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveTypeString(t *testing.T) {
	assert.Equal(t, "place-word", MovePlaceWord.String())
	assert.Equal(t, "prune-leaves", MovePruneLeaves.String())
	assert.Equal(t, "partition", MovePartition.String())
	assert.Equal(t, "recombination", MoveRecombination.String())
	assert.Equal(t, "unknown", MoveType(99).String())
}

func TestWeightedMoveTypes(t *testing.T) {
	moves := weightedMoveTypes(3, 1)
	assert.Equal(t, []MoveType{MovePlaceWord, MovePlaceWord, MovePlaceWord, MovePruneLeaves}, moves)
}

func TestChooseRandomMoveTypeDeterministic(t *testing.T) {
	gen := &Generator{settings: DefaultSettings()}
	for seed := uint64(0); seed < 50; seed++ {
		first := gen.chooseRandomMoveType(seed)
		second := gen.chooseRandomMoveType(seed)
		assert.Equal(t, first, second, "seed %d", seed)
	}
}

func TestChooseRandomMoveTypeCoversBoth(t *testing.T) {
	gen := &Generator{settings: DefaultSettings()}
	seen := make(map[MoveType]bool)
	for seed := uint64(0); seed < 200; seed++ {
		seen[gen.chooseRandomMoveType(seed)] = true
	}
	assert.True(t, seen[MovePlaceWord])
	assert.True(t, seen[MovePruneLeaves])
}
