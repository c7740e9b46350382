package line

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDropsCommentsAndBlanks(t *testing.T) {
	text := "X:1\r\n\n% a comment\n  T:Song  \nABC\n"
	assert.Equal(t, []string{"X:1", "T:Song", "ABC"}, Split(text))
}

func TestSplitNumberedKeepsSourcePositions(t *testing.T) {
	sources := SplitNumbered("X:1\n\n% c\nCDE")
	assert.Equal(t, []Source{{Num: 1, Text: "X:1"}, {Num: 4, Text: "CDE"}}, sources)
}

func TestClassify(t *testing.T) {
	cases := map[string]Kind{
		"T:Title":     KindMetadata,
		"Q:1/4=72":    KindMetadata,
		"X:1":         KindMetadata,
		"V:1":         KindMetadata,
		"w: la la":    KindLyric,
		`"w: la la`:   KindLyric,
		"CDEF|":       KindContent,
		"{ten:50}":    KindContent,
		`"la"C "lo"D`: KindContent,
		"z8 | z8 |":   KindContent,
	}
	for l, want := range cases {
		t.Run(l, func(t *testing.T) {
			assert.Equal(t, want, Classify(l))
		})
	}
}

func TestExtractMetadataDefaults(t *testing.T) {
	m := ExtractMetadata([]string{"CDEF"})

	assert := assert.New(t)
	assert.Equal("4/4", m.Meter)
	assert.Equal("1/4", m.UnitLength)
	assert.Equal(120, m.Tempo)
	assert.Equal("C", m.Key)
}

func TestExtractMetadata(t *testing.T) {
	lines := []string{
		"X:1",
		"T:Rest Test",
		"C:Someone",
		"M:3/4",
		"L:1/8",
		"Q:1/4=72",
		"K:D",
		"CDEF",
	}
	m := ExtractMetadata(lines)

	assert := assert.New(t)
	assert.Equal("Rest Test", m.Title)
	assert.Equal("Someone", m.Composer)
	assert.Equal("3/4", m.Meter)
	assert.Equal("1/8", m.UnitLength)
	assert.Equal(72, m.Tempo)
	assert.Equal("D", m.Key)
}

func TestExtractTempoWithoutPatternKeepsDefault(t *testing.T) {
	m := ExtractMetadata([]string{"Q:Allegro"})
	assert.Equal(t, 120, m.Tempo)
}

func TestExtractTempoFirstMatchWins(t *testing.T) {
	m := ExtractMetadata([]string{`Q:"Lively" 1/4=96 1/8=200`})
	assert.Equal(t, 96, m.Tempo)
}

func TestSyllables(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"la", "_", "la"}, Syllables("w:la_ la"))
	assert.Equal([]string{"hel", "lo", "world"}, Syllables("w: hel-lo world"))
	assert.Equal([]string{"oh", "~", "~", "yeah"}, Syllables(`"w: oh~~ | yeah`))
	assert.Empty(Syllables("w:"))
}
