package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(tokens []Token) []Kind {
	var res []Kind
	for _, t := range tokens {
		res = append(res, t.Kind)
	}
	return res
}

func TestLexMixedLine(t *testing.T) {
	tokens := Lex(`{ten:50}"la"C2 ^D/2 | z4 [CEG]2 {expr:smile}"lo"e'3/2`)

	assert := assert.New(t)
	assert.Equal([]Kind{Param, InlineLyric, Note, Note, Rest, Chord, Param, InlineLyric, Note}, kinds(tokens))

	assert.Equal("ten", tokens[0].Key)
	assert.Equal("50", tokens[0].Value)
	assert.Equal("la", tokens[1].Text)

	assert.Equal("C", tokens[2].Pitch)
	assert.Equal(2, tokens[2].Multiplier)
	assert.Equal(0, tokens[2].Divisor)

	assert.Equal("^D", tokens[3].Pitch)
	assert.Equal(2, tokens[3].Divisor)

	assert.Equal(4, tokens[4].Multiplier)
	assert.Equal("[CEG]2", tokens[5].Text)
	assert.Equal(2, tokens[5].Multiplier)

	assert.Equal("e'", tokens[8].Pitch)
	assert.Equal(3, tokens[8].Multiplier)
	assert.Equal(2, tokens[8].Divisor)
}

func TestLexRests(t *testing.T) {
	tokens := Lex("z8 | z8 |")

	assert := assert.New(t)
	assert.Equal([]Kind{Rest, Rest}, kinds(tokens))
	assert.Equal(8, tokens[0].Multiplier)
	assert.Equal(8, tokens[1].Multiplier)
}

func TestLexParamWithoutValue(t *testing.T) {
	tokens := Lex("{ten:}{br}")

	assert := assert.New(t)
	assert.Equal([]Kind{Param, Param}, kinds(tokens))
	assert.Equal("", tokens[0].Value)
	assert.Equal("br", tokens[1].Key)
	assert.Equal("", tokens[1].Value)
}

func TestLexParamListValue(t *testing.T) {
	tokens := Lex("{vib: 60,50,10}")
	assert.Equal(t, "60,50,10", tokens[0].Value)
}

func TestLexZeroDivisorIsInvalid(t *testing.T) {
	tokens := Lex("C/0 D0 E")

	assert := assert.New(t)
	assert.Equal([]Kind{Invalid, Invalid, Note}, kinds(tokens))
	assert.Contains(tokens[0].Reason, "divisor")
	assert.Contains(tokens[1].Reason, "multiplier")
}

func TestLexDropsNoise(t *testing.T) {
	tokens := Lex(`|: H ^ "" x y :| C`)

	assert := assert.New(t)
	assert.Equal([]Kind{Note}, kinds(tokens))
	assert.Equal("C", tokens[0].Pitch)
}

func TestLexBareSlashIsNotADivisor(t *testing.T) {
	tokens := Lex("C/ D")

	assert := assert.New(t)
	assert.Equal([]Kind{Note, Note}, kinds(tokens))
	assert.Equal(0, tokens[0].Divisor)
}

func TestLexUnclosedBlocksAreSkipped(t *testing.T) {
	assert := assert.New(t)

	tokens := Lex(`"x C`)
	assert.Equal([]Kind{Note}, kinds(tokens))

	tokens = Lex(`C {ten:50 D`)
	assert.Equal([]Kind{Note, Invalid}, kinds(tokens))
	assert.Equal("unclosed parameter block", tokens[1].Reason)
}

func TestTimed(t *testing.T) {
	assert := assert.New(t)
	assert.True(Token{Kind: Note}.Timed())
	assert.True(Token{Kind: Rest}.Timed())
	assert.True(Token{Kind: Chord}.Timed())
	assert.False(Token{Kind: Param}.Timed())
	assert.False(Token{Kind: InlineLyric}.Timed())
}
