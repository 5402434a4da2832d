package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryMergeWithGrid(t *testing.T) {
	bee, bear := singletonPair(t)

	require.True(t, bee.TryMergeWithGrid(bear, 1))

	assert.Equal(t, 2, bee.CountPlacedWords())
	assert.Equal(t, 1, bee.CountIntersections())
	assert.NoError(t, bee.CheckAllWordPlacementsValid())
	bee.CheckValid()
	assert.True(t, bee.BlackCellsValid())
}

func TestTryMergeWithGridRequiresOverlaps(t *testing.T) {
	bee, bear := singletonPair(t)
	before := bee.Render()

	// Perpendicular words share at most one cell, so demanding two
	// overlaps must fail and leave the grid untouched.
	assert.False(t, bee.TryMergeWithGrid(bear, 2))
	assert.Equal(t, before, bee.Render())
	assert.Equal(t, 1, bee.CountPlacedWords())
}

func TestTryMergeWithGridRejectsSharedPlacedWord(t *testing.T) {
	words := map[int]*Word{0: NewWord("BEAR", "", nil)}
	first := newSinglePlaced(0, Across, words)
	second := newSinglePlaced(0, Down, words)

	assert.False(t, first.TryMergeWithGrid(second, 1))
}

func TestTryMergeWithGridNoSharedLetters(t *testing.T) {
	words := map[int]*Word{
		0: NewWord("BEE", "", nil),
		1: NewWord("DRY", "", nil),
	}
	bee := newSinglePlaced(0, Across, words)
	dry := newSinglePlaced(1, Down, words)

	assert.False(t, bee.TryMergeWithGrid(dry, 1))
}

func TestMergeWithGridDeterministic(t *testing.T) {
	buildPair := func() (*CrosswordGrid, *CrosswordGrid) {
		words := map[int]*Word{
			0: NewWord("BEARER", "", nil),
			1: NewWord("ROAD", "", nil),
		}
		return newSinglePlaced(0, Across, words), newSinglePlaced(1, Down, words)
	}

	first, firstOther := buildPair()
	second, secondOther := buildPair()
	require.True(t, first.TryMergeWithGrid(firstOther, 1))
	require.True(t, second.TryMergeWithGrid(secondOther, 1))

	assert.Equal(t, first.Render(), second.Render())
}

func TestMergeWithGridPanicsOnMissingTargetWord(t *testing.T) {
	bee, _ := singletonPair(t)
	other := NewSingleWord("BEAR")
	require.NoError(t, other.UpdateWordID(0, 42))

	// bee's word table has no entry for id 42.
	assert.Panics(t, func() { _ = bee.MergeWithGrid(other, 0, 0) })
}

func TestPartitionThenMergeRestoresWordCount(t *testing.T) {
	g := NewSingleWord("BEARER")
	roadID := g.AddUnplacedWord("ROAD", "", nil)
	require.NoError(t, g.PlaceWordInCell(Location{Row: 0, Col: 3}, roadID, 0, Down))
	dentID := g.AddUnplacedWord("DENT", "", nil)
	require.NoError(t, g.PlaceWordInCell(Location{Row: 3, Col: 3}, dentID, 0, Across))
	total := g.CountPlacedWords()

	other, err := g.RandomPartition(11)
	require.NoError(t, err)

	if g.TryMergeWithGrid(other, 1) {
		assert.Equal(t, total, g.CountPlacedWords())
		assert.NoError(t, g.CheckAllWordPlacementsValid())
		g.CheckValid()
	}
}
