package keysig

import (
	"strings"
	"unicode"
)

const (
	sharpOrder = "FCGDAEB"
	flatOrder  = "BEADGCF"
)

type Signature struct {
	Letters map[byte]bool
	Sharps  bool
}

// Semitones returns the adjustment the signature applies to letter.
func (s Signature) Semitones(letter byte) int {
	if !s.Letters[byte(unicode.ToUpper(rune(letter)))] {
		return 0
	}
	if s.Sharps {
		return 1
	}
	return -1
}

// positive counts are sharps, negative counts flats
var keyAccidentals = map[string]int{
	"C#": 7, "A#m": 7,
	"F#": 6, "D#m": 6,
	"B": 5, "G#m": 5,
	"E": 4, "C#m": 4,
	"A": 3, "F#m": 3,
	"D": 2, "Bm": 2,
	"G": 1, "Em": 1,
	"C": 0, "Am": 0,
	"F": -1, "Dm": -1,
	"Bb": -2, "Gm": -2,
	"Eb": -3, "Cm": -3,
	"Ab": -4, "Fm": -4,
	"Db": -5, "Bbm": -5,
	"Gb": -6, "Ebm": -6,
	"Cb": -7, "Abm": -7,
}

var modeSuffixes = map[string]string{
	"":        "",
	"maj":     "",
	"major":   "",
	"ion":     "",
	"ionian":  "",
	"m":       "m",
	"min":     "m",
	"minor":   "m",
	"aeo":     "m",
	"aeolian": "m",
}

// Normalize reduces a K: field to a table key such as "F#m" or "Bb". It
// returns "" for anything it cannot read.
func Normalize(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	s := fields[0]
	if len(fields) > 1 {
		if _, ok := modeSuffixes[strings.ToLower(fields[1])]; ok {
			s += fields[1]
		}
	}

	tonic := unicode.ToUpper(rune(s[0]))
	if tonic < 'A' || tonic > 'G' {
		return ""
	}
	res := string(tonic)
	rest := s[1:]
	if len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b') {
		res += string(rest[0])
		rest = rest[1:]
	}
	mode, ok := modeSuffixes[strings.ToLower(rest)]
	if !ok {
		return ""
	}
	return res + mode
}

// Lookup returns the accidental set for a key. Keys outside the table get an
// empty signature.
func Lookup(name string) Signature {
	sig := Signature{Letters: map[byte]bool{}}
	count, ok := keyAccidentals[Normalize(name)]
	if !ok || count == 0 {
		return sig
	}
	order := sharpOrder
	sig.Sharps = count > 0
	if count < 0 {
		order = flatOrder
		count = -count
	}
	for i := 0; i < count; i++ {
		sig.Letters[order[i]] = true
	}
	return sig
}
