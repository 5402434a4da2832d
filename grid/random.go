package grid

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/zyedidia/generic/mapset"
)

// ErrNotEnoughPlacedWords indicates a partition was requested on a grid
// with fewer than two placed words.
var ErrNotEnoughPlacedWords = errors.New("grid: need at least two placed words to partition")

// newRand builds the deterministic generator used by every seeded
// operation. All randomness in the engine flows from explicit seeds.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// placementAttempt is one candidate (word, letter index, anchor cell,
// direction) combination for the greedy search to try.
type placementAttempt struct {
	wordID      int
	indexInWord int
	location    Location
	direction   Direction
}

type openSlot struct {
	location  Location
	direction Direction
}

// placementAttempts enumerates every candidate placement in a
// deterministically shuffled order: for each shuffled unplaced word, for
// each letter position, every shuffled open slot holding that letter. A
// slot's direction is forced by which axis already owns it; only
// non-intersection letter cells are open.
func (g *CrosswordGrid) placementAttempts(seed uint64) []placementAttempt {
	rng := newRand(seed)

	slotsByLetter := make(map[rune][]openSlot)
	for _, loc := range g.sortedCellLocations() {
		cell := g.cells[loc]
		if !cell.HasLetter() || cell.IsIntersection() {
			continue
		}
		dir := Across
		if cell.WordID(Across) != NoWord {
			dir = Down
		}
		slotsByLetter[cell.Char()] = append(slotsByLetter[cell.Char()], openSlot{location: loc, direction: dir})
	}
	for _, c := range ValidAnswerChars {
		slots := slotsByLetter[c]
		sort.Slice(slots, func(i, j int) bool {
			if slots[i].direction != slots[j].direction {
				return slots[i].direction < slots[j].direction
			}
			if slots[i].location.Row != slots[j].location.Row {
				return slots[i].location.Row < slots[j].location.Row
			}
			return slots[i].location.Col < slots[j].location.Col
		})
		rng.Shuffle(len(slots), func(i, j int) {
			slots[i], slots[j] = slots[j], slots[i]
		})
		slotsByLetter[c] = slots
	}

	var unplaced []int
	for id, w := range g.words {
		if !w.IsPlaced() {
			unplaced = append(unplaced, id)
		}
	}
	sort.Ints(unplaced)
	rng.Shuffle(len(unplaced), func(i, j int) {
		unplaced[i], unplaced[j] = unplaced[j], unplaced[i]
	})

	var attempts []placementAttempt
	for _, id := range unplaced {
		w := g.words[id]
		for i := 0; i < w.len(); i++ {
			for _, slot := range slotsByLetter[w.charAt(i)] {
				attempts = append(attempts, placementAttempt{
					wordID:      id,
					indexInWord: i,
					location:    slot.location,
					direction:   slot.direction,
				})
			}
		}
	}
	return attempts
}

// PlaceRandomWord tries candidate placements in seeded-shuffle order and
// stops at the first success. Greedy and non-backtracking: it reports
// false only when every candidate fails.
func (g *CrosswordGrid) PlaceRandomWord(seed uint64) bool {
	for _, attempt := range g.placementAttempts(seed) {
		err := g.PlaceWordInCell(attempt.location, attempt.wordID, attempt.indexInWord, attempt.direction)
		if err == nil {
			return true
		}
		log.Debugf("placement attempt %+v rejected: %v", attempt, err)
	}
	return false
}

// RemoveRandomLeaves unplaces up to numLeaves leaf words (graph degree
// ≤ 1) chosen in seeded-shuffle order, never dropping below one placed
// word. Each removal is vetted against the current graph so the
// remainder always stays one component.
func (g *CrosswordGrid) RemoveRandomLeaves(numLeaves int, seed uint64) {
	leaves := g.ToGraph().FindLeaves()
	rng := newRand(seed)
	rng.Shuffle(len(leaves), func(i, j int) {
		leaves[i], leaves[j] = leaves[j], leaves[i]
	})
	log.Debugf("attempting to remove %d of %d leaves", numLeaves, len(leaves))

	count := 0
	for count < numLeaves && g.CountPlacedWords() > 1 && len(leaves) > 0 {
		id := leaves[len(leaves)-1]
		leaves = leaves[:len(leaves)-1]
		comps, err := g.ToGraph().ComponentsAfterDeletingNode(id)
		if err != nil || len(comps) > 1 {
			count++
			continue
		}
		log.Debugf("removing leaf word %d", id)
		g.UnplaceWord(id)
		count++
	}
}

// RandomPartition splits the grid in two along its word graph: two
// distinct placed words are chosen by seed, the graph is partitioned
// around them, and the receiver keeps only the first component placed
// while the returned grid keeps only the second. Both grids retain the
// full word table, so their placed word sets are disjoint and a later
// merge can reunite them.
func (g *CrosswordGrid) RandomPartition(seed uint64) (*CrosswordGrid, error) {
	placed := g.PlacedWordIDs()
	if len(placed) < 2 {
		return nil, fmt.Errorf("%w: %d placed", ErrNotEnoughPlacedWords, len(placed))
	}
	rng := newRand(seed)
	rng.Shuffle(len(placed), func(i, j int) {
		placed[i], placed[j] = placed[j], placed[i]
	})
	compA, compB, err := g.ToGraph().PartitionNodes(placed[0], placed[1])
	if err != nil {
		return nil, err
	}

	other := g.Clone()
	keep := mapset.New[int]()
	for _, id := range compA {
		keep.Put(id)
	}
	for _, id := range g.PlacedWordIDs() {
		if !keep.Has(id) {
			g.UnplaceWord(id)
		}
	}
	for _, id := range compA {
		other.UnplaceWord(id)
	}
	log.Debugf("partitioned grid into %d + %d placed words", len(compA), len(compB))
	return other, nil
}
