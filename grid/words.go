package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyAnswer indicates a seed entry whose answer sanitized to nothing.
var ErrEmptyAnswer = errors.New("grid: answer contains no letters")

// WordEntry is one seed input: an answer, its clue, and an optional
// forced orientation.
type WordEntry struct {
	Answer      string
	Clue        string
	RequiredDir *Direction
}

// ParseWordEntry parses one seed line of the form
//
//	answer|clue|A
//
// with clue and the trailing direction marker (A or D) both optional.
// The answer is sanitized to uppercase letters.
func ParseWordEntry(line string) (WordEntry, error) {
	parts := strings.Split(line, "|")
	entry := WordEntry{Answer: SanitizeAnswer(parts[0])}
	if entry.Answer == "" {
		return WordEntry{}, fmt.Errorf("%w: %q", ErrEmptyAnswer, line)
	}
	if len(parts) > 1 {
		entry.Clue = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		switch strings.TrimSpace(strings.ToUpper(parts[2])) {
		case "A":
			d := Across
			entry.RequiredDir = &d
		case "D":
			d := Down
			entry.RequiredDir = &d
		}
	}
	return entry, nil
}

// ParseWordList parses newline-separated seed entries, skipping blank
// lines and lines starting with '#'.
func ParseWordList(contents string) ([]WordEntry, error) {
	var entries []WordEntry
	for _, line := range strings.Split(contents, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		entry, err := ParseWordEntry(trimmed)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// RandomSingletonGrids builds the generation-0 population: one grid per
// seed word with that word placed at the origin and every other word
// added unplaced. Orientation is the word's forced direction when set,
// otherwise chosen by the seeded stream.
func RandomSingletonGrids(entries []WordEntry, seed uint64) []*CrosswordGrid {
	words := make(map[int]*Word, len(entries))
	for i, e := range entries {
		words[i] = NewWord(e.Answer, e.Clue, e.RequiredDir)
	}

	rng := newRand(seed)
	grids := make([]*CrosswordGrid, 0, len(entries))
	for id := 0; id < len(entries); id++ {
		dir := Across
		if rng.IntN(2) == 1 {
			dir = Down
		}
		if forced, ok := words[id].RequiredDirection(); ok {
			dir = forced
		}
		grids = append(grids, newSinglePlaced(id, dir, words))
	}
	return grids
}
