package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *CrosswordGrid {
	t.Helper()
	g, err := ParseGrid(text)
	require.NoError(t, err)
	return g
}

const crossedFixture = "APPLE\n" +
	"P   A\n" +
	"PEARS\n" +
	"L   T\n" +
	"EAGER\n"

func TestParseGridWords(t *testing.T) {
	g := mustParse(t, crossedFixture)

	var texts []string
	for _, id := range g.PlacedWordIDs() {
		w, err := g.Word(id)
		require.NoError(t, err)
		texts = append(texts, w.Text())
	}
	assert.ElementsMatch(t, []string{"APPLE", "PEARS", "EAGER", "APPLE", "EASTR"}, texts)
	assert.Equal(t, 5, g.CountPlacedWords())
}

func TestParseGridDropsSingleLetterFragments(t *testing.T) {
	g := mustParse(t, "APPLE")

	assert.Equal(t, 1, g.CountAllWords())
	assert.Equal(t, 1, g.CountPlacedWords())
}

func TestParseGridEmpty(t *testing.T) {
	_, err := ParseGrid("")
	assert.ErrorIs(t, err, ErrEmptyGridText)

	_, err = ParseGrid("   \n   ")
	assert.ErrorIs(t, err, ErrEmptyGridText)
}

func TestParseGridRaggedRows(t *testing.T) {
	g := mustParse(t, "APPLE\nP\nPEARS")

	assert.Equal(t, "APPLE\nP    \nPEARS\n", g.Render())

	// Columns the short middle row never reached must end their down
	// runs there rather than bridging row 0 to row 2 across the hole.
	var texts []string
	for _, id := range g.PlacedWordIDs() {
		w, err := g.Word(id)
		require.NoError(t, err)
		texts = append(texts, w.Text())
	}
	assert.ElementsMatch(t, []string{"APPLE", "PEARS", "APP"}, texts)
	assert.True(t, g.BlackCellsValid())
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "single word", text: "ALPHA\n"},
		{name: "crossed words", text: crossedFixture},
		{
			name: "two across words in one row",
			text: "CAT DOG\n" +
				"A     U\n" +
				"BEE SUG\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.text)
			assert.Equal(t, tc.text, g.Render())

			reparsed, err := RoundTrip(g)
			require.NoError(t, err)
			assert.Equal(t, g.Render(), reparsed.Render())
		})
	}
}
