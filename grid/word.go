package grid

import (
	"strings"
)

// ValidAnswerChars is the alphabet a placed answer may use. Answer text is
// sanitized against it before entering the grid.
const ValidAnswerChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// placement records where a placed word sits: start and end inclusive, and
// the axis it runs along. End is always start stepped len-1 cells along dir.
type placement struct {
	start Location
	end   Location
	dir   Direction
}

// Word is one answer in the grid's word table. A word may be unplaced
// (waiting for the search to find it a home) or placed at a concrete
// location. RequiredDir, when non-nil, pins the orientation the word must
// take.
type Word struct {
	text        string
	clue        string
	requiredDir *Direction
	placement   *placement
}

// NewWord builds an unplaced word. Text is expected to be sanitized
// already (see SanitizeAnswer).
func NewWord(text, clue string, requiredDir *Direction) *Word {
	return &Word{text: text, clue: clue, requiredDir: requiredDir}
}

func newPlacedWord(text string, start Location, dir Direction) *Word {
	w := &Word{text: text}
	w.place(start, dir)
	return w
}

func (w *Word) place(start Location, dir Direction) {
	w.placement = &placement{
		start: start,
		end:   start.Step(len(w.text)-1, dir),
		dir:   dir,
	}
}

func (w *Word) removePlacement() { w.placement = nil }

// extend appends a letter and advances the end location. Used only by the
// grid parser while scanning runs of letters.
func (w *Word) extend(c rune) {
	w.text += string(c)
	if w.placement != nil {
		w.placement.end = w.placement.end.Step(1, w.placement.dir)
	}
}

// IsPlaced reports whether the word currently has a placement.
func (w *Word) IsPlaced() bool { return w.placement != nil }

// Placement returns the word's start, end, and direction. ok is false for
// an unplaced word.
func (w *Word) Placement() (start, end Location, dir Direction, ok bool) {
	if w.placement == nil {
		return Location{}, Location{}, Across, false
	}
	return w.placement.start, w.placement.end, w.placement.dir, true
}

// Text returns the answer text.
func (w *Word) Text() string { return w.text }

// Clue returns the clue text.
func (w *Word) Clue() string { return w.clue }

// RequiredDirection returns the forced orientation, if any.
func (w *Word) RequiredDirection() (Direction, bool) {
	if w.requiredDir == nil {
		return Across, false
	}
	return *w.requiredDir, true
}

// allowsDirection reports whether placing along dir honors the word's
// forced orientation.
func (w *Word) allowsDirection(dir Direction) bool {
	return w.requiredDir == nil || *w.requiredDir == dir
}

func (w *Word) len() int { return len(w.text) }

func (w *Word) charAt(i int) rune { return rune(w.text[i]) }

func (w *Word) clone() *Word {
	c := *w
	if w.requiredDir != nil {
		d := *w.requiredDir
		c.requiredDir = &d
	}
	if w.placement != nil {
		p := *w.placement
		c.placement = &p
	}
	return &c
}

// SanitizeAnswer uppercases s and strips every character outside
// ValidAnswerChars, so "fish and chips" becomes "FISHANDCHIPS".
func SanitizeAnswer(s string) string {
	upper := strings.ToUpper(s)
	var b strings.Builder
	for _, c := range upper {
		if strings.ContainsRune(ValidAnswerChars, c) {
			b.WriteRune(c)
		}
	}
	return b.String()
}
