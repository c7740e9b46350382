package parser

import (
	"fmt"
	"strings"

	"github.com/jsphweid/eabc2acep/align"
	"github.com/jsphweid/eabc2acep/lexer"
	"github.com/jsphweid/eabc2acep/line"
	"github.com/jsphweid/eabc2acep/model"
	"github.com/pkg/errors"
)

var (
	ErrEmptyInput = errors.New("please enter EABC notation")
	ErrNoNotes    = errors.New("no notes found in input")
)

// Parse reads a complete EABC document into a note timeline.
func Parse(text string) (*model.Score, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	sources := line.SplitNumbered(text)
	lines := make([]string, 0, len(sources))
	for _, src := range sources {
		lines = append(lines, src.Text)
	}
	score := &model.Score{Metadata: line.ExtractMetadata(lines)}
	ctx := align.NewContext(score.Metadata)

	var st align.State
	for i := 0; i < len(sources); i++ {
		src := sources[i]
		switch line.Classify(src.Text) {
		case line.KindLyric:
			st = st.Lyrics(line.Syllables(src.Text))
		case line.KindContent:
			tokens := lexer.Lex(src.Text)
			if i+1 < len(sources) && line.Classify(sources[i+1].Text) == line.KindLyric && st.TakesFollowingLyrics(tokens) {
				i++
				st = st.Lyrics(line.Syllables(sources[i].Text))
			}

			var notes []model.NoteEvent
			var warnings []string
			st, notes, warnings = st.ScanLine(tokens, ctx)
			score.Notes = append(score.Notes, notes...)
			for _, w := range warnings {
				score.Warnings = append(score.Warnings, fmt.Sprintf("line %d %v", src.Num, w))
			}
		}
	}
	score.EndTick = st.Tick

	if len(score.Notes) == 0 {
		return nil, ErrNoNotes
	}
	return score, nil
}
