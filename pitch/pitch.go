package pitch

import (
	"unicode"

	"github.com/jsphweid/eabc2acep/keysig"
	"github.com/pkg/errors"
)

var ErrInvalid = errors.New("invalid pitch")

var noteOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

const baseOctave = 4

// Pitch is a note token split into its parts: accidentals such as "^" or
// "_=", the letter, and octave marks such as "''" or ",".
type Pitch struct {
	Accidentals string
	Letter      byte
	Octave      string
}

// Parse splits a raw token like "^c'" into a Pitch.
func Parse(token string) (Pitch, error) {
	var p Pitch
	i := 0
	for i < len(token) && isAccidental(token[i]) {
		i++
	}
	p.Accidentals = token[:i]
	if i >= len(token) {
		return p, errors.Wrapf(ErrInvalid, "no letter in %q", token)
	}
	p.Letter = token[i]
	if _, ok := noteOffsets[upper(p.Letter)]; !ok {
		return p, errors.Wrapf(ErrInvalid, "unknown letter in %q", token)
	}
	for _, c := range []byte(token[i+1:]) {
		if c != '\'' && c != ',' {
			return p, errors.Wrapf(ErrInvalid, "unexpected %q in %q", c, token)
		}
	}
	p.Octave = token[i+1:]
	return p, nil
}

// Midi resolves p to a MIDI note number under the given key signature.
func (p Pitch) Midi(sig keysig.Signature) (int, error) {
	offset, ok := noteOffsets[upper(p.Letter)]
	if !ok {
		return 0, errors.Wrapf(ErrInvalid, "unknown letter %q", p.Letter)
	}

	if p.Accidentals != "" {
		offset += explicitSemitones(p.Accidentals)
	} else {
		offset += sig.Semitones(p.Letter)
	}

	octave := baseOctave
	for _, c := range []byte(p.Octave) {
		switch c {
		case '\'':
			octave++
		case ',':
			octave--
		}
	}
	if unicode.IsLower(rune(p.Letter)) {
		octave++
	}

	midi := 12*(octave+1) + offset
	if midi < 0 || midi > 127 {
		return 0, errors.Wrapf(ErrInvalid, "note %d out of MIDI range", midi)
	}
	return midi, nil
}

// ToMidi resolves a pitch token in the named key.
func ToMidi(token string, key string) (int, error) {
	p, err := Parse(token)
	if err != nil {
		return 0, err
	}
	return p.Midi(keysig.Lookup(key))
}

// explicitSemitones sums the markers; a natural resets whatever came before it.
func explicitSemitones(acc string) int {
	var res int
	for _, c := range []byte(acc) {
		switch c {
		case '^':
			res++
		case '_':
			res--
		case '=':
			res = 0
		}
	}
	return res
}

func isAccidental(b byte) bool {
	return b == '^' || b == '_' || b == '='
}

func upper(b byte) byte {
	return byte(unicode.ToUpper(rune(b)))
}
