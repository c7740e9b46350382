package lexer

import (
	"strconv"
	"strings"
)

type Kind int

const (
	Param Kind = iota + 1
	Note
	Rest
	Chord
	InlineLyric
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Param:
		return "param"
	case Note:
		return "note"
	case Rest:
		return "rest"
	case Chord:
		return "chord"
	case InlineLyric:
		return "lyric"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

type Token struct {
	Kind Kind
	Pos  int
	Text string

	// Param
	Key   string
	Value string

	// Note: accidentals, letter and octave marks, e.g. "^c'"
	Pitch string

	// Note, Rest, Chord. Zero means the suffix was absent.
	Multiplier int
	Divisor    int

	// Invalid
	Reason string
}

// Timed reports whether the token occupies time on the timeline.
func (t Token) Timed() bool {
	return t.Kind == Note || t.Kind == Rest || t.Kind == Chord
}

// Lex turns one content line into an ordered token stream. Bars, ties,
// spaces and anything else outside the grammar are dropped.
func Lex(line string) []Token {
	var res []Token
	i := 0
	for i < len(line) {
		ch := line[i]
		switch {
		case ch == '{':
			end := strings.IndexByte(line[i:], '}')
			if end < 0 {
				res = append(res, Token{Kind: Invalid, Pos: i, Text: line[i:], Reason: "unclosed parameter block"})
				i = len(line)
				continue
			}
			res = append(res, lexParam(line[i:i+end+1], i))
			i += end + 1
		case ch == '"':
			end := strings.IndexByte(line[i+1:], '"')
			if end < 0 {
				i++
				continue
			}
			if end == 0 {
				i += 2
				continue
			}
			text := line[i+1 : i+1+end]
			res = append(res, Token{Kind: InlineLyric, Pos: i, Text: text})
			i += end + 2
		case ch == '[':
			end := strings.IndexByte(line[i:], ']')
			if end <= 1 {
				i++
				continue
			}
			tok, next := lexSuffix(Token{Kind: Chord, Pos: i}, line, i+end+1)
			tok.Text = line[i:next]
			res = append(res, tok)
			i = next
		case ch == 'z':
			tok, next := lexSuffix(Token{Kind: Rest, Pos: i}, line, i+1)
			tok.Text = line[i:next]
			res = append(res, tok)
			i = next
		case isAccidental(ch) || isLetter(ch):
			j := i
			for j < len(line) && isAccidental(line[j]) {
				j++
			}
			if j >= len(line) || !isLetter(line[j]) {
				i = j
				continue
			}
			j++
			for j < len(line) && (line[j] == '\'' || line[j] == ',') {
				j++
			}
			tok, next := lexSuffix(Token{Kind: Note, Pos: i, Pitch: line[i:j]}, line, j)
			tok.Text = line[i:next]
			res = append(res, tok)
			i = next
		default:
			i++
		}
	}
	return res
}

func lexParam(block string, pos int) Token {
	tok := Token{Kind: Param, Pos: pos, Text: block}
	body := strings.TrimSuffix(strings.TrimPrefix(block, "{"), "}")
	key, value, found := strings.Cut(body, ":")
	tok.Key = strings.TrimSpace(key)
	if found {
		tok.Value = strings.TrimSpace(value)
	}
	return tok
}

// lexSuffix reads the optional multiplier digits and /divisor digits that
// follow a note, rest or chord.
func lexSuffix(tok Token, line string, at int) (Token, int) {
	i := at
	digits, next := readDigits(line, i)
	if digits != "" {
		v, err := strconv.Atoi(digits)
		if err != nil || v == 0 {
			return invalid(tok, "bad multiplier "+digits), next
		}
		tok.Multiplier = v
		i = next
	}
	if i < len(line) && line[i] == '/' {
		digits, next := readDigits(line, i+1)
		if digits != "" {
			v, err := strconv.Atoi(digits)
			if err != nil || v == 0 {
				return invalid(tok, "bad divisor /"+digits), next
			}
			tok.Divisor = v
			i = next
		}
	}
	return tok, i
}

func invalid(tok Token, reason string) Token {
	tok.Reason = reason
	tok.Kind = Invalid
	return tok
}

func readDigits(s string, at int) (string, int) {
	i := at
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[at:i], i
}

func isAccidental(b byte) bool { return b == '^' || b == '_' || b == '=' }

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'G') || (b >= 'a' && b <= 'g')
}
