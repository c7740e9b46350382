package line

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/jsphweid/eabc2acep/model"
)

type Kind int

const (
	KindContent Kind = iota
	KindMetadata
	KindLyric
)

const CommentMarker = "%"

var knownFields = []string{"T:", "C:", "M:", "L:", "K:", "Q:", "X:"}

var tempoPattern = regexp.MustCompile(`(\d+/\d+)\s*=\s*(\d+)`)

// Source is a kept line with its 1-based position in the original text.
type Source struct {
	Num  int
	Text string
}

// SplitNumbered breaks text into trimmed lines, dropping blanks and comments.
func SplitNumbered(text string) []Source {
	var res []Source
	for i, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, CommentMarker) {
			continue
		}
		res = append(res, Source{Num: i + 1, Text: l})
	}
	return res
}

func Split(text string) []string {
	sources := SplitNumbered(text)
	res := make([]string, 0, len(sources))
	for _, src := range sources {
		res = append(res, src.Text)
	}
	return res
}

func Classify(l string) Kind {
	if isLyric(l) {
		return KindLyric
	}
	for _, f := range knownFields {
		if strings.HasPrefix(l, f) {
			return KindMetadata
		}
	}
	// other ABC header fields (V:, R:, W:...) are recognised so their text is
	// never scanned as notes
	if len(l) >= 2 && l[1] == ':' && l[0] >= 'A' && l[0] <= 'Z' {
		return KindMetadata
	}
	return KindContent
}

func isLyric(l string) bool {
	return strings.HasPrefix(strings.TrimPrefix(l, `"`), "w:")
}

func fieldValue(l string) string {
	return strings.TrimSpace(l[2:])
}

// ExtractMetadata reads header fields from every line. A later field of the
// same tag overrides an earlier one.
func ExtractMetadata(lines []string) model.Metadata {
	m := model.DefaultMetadata()
	for _, l := range lines {
		if Classify(l) != KindMetadata {
			continue
		}
		switch l[:2] {
		case "T:":
			m.Title = fieldValue(l)
		case "C:":
			m.Composer = fieldValue(l)
		case "M:":
			m.Meter = fieldValue(l)
		case "L:":
			m.UnitLength = fieldValue(l)
		case "K:":
			m.Key = fieldValue(l)
		case "Q:":
			if tempo, ok := parseTempo(fieldValue(l)); ok {
				m.Tempo = tempo
			}
		}
	}
	return m
}

func parseTempo(s string) (int, bool) {
	match := tempoPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, false
	}
	bpm, err := strconv.Atoi(match[2])
	if err != nil || bpm <= 0 {
		return 0, false
	}
	return bpm, true
}

func isMelisma(r rune) bool { return r == '_' || r == '~' }

// Syllables splits a w: line into syllables. Hyphens and whitespace separate
// syllables, while each _ or ~ is kept as its own melisma marker.
func Syllables(l string) []string {
	text := strings.TrimPrefix(l, `"`)
	text = strings.TrimPrefix(text, "w:")
	text = strings.Trim(text, `" `)

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})

	var res []string
	for _, field := range fields {
		var curr strings.Builder
		flush := func() {
			if curr.Len() > 0 {
				res = append(res, curr.String())
				curr.Reset()
			}
		}
		for _, r := range field {
			switch {
			case isMelisma(r):
				flush()
				res = append(res, string(r))
			case r == '|':
				flush()
			default:
				curr.WriteRune(r)
			}
		}
		flush()
	}
	return res
}

func IsMelismaMarker(s string) bool {
	return s == "_" || s == "~"
}
