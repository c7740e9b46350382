package align

import (
	"fmt"

	"github.com/jsphweid/eabc2acep/duration"
	"github.com/jsphweid/eabc2acep/keysig"
	"github.com/jsphweid/eabc2acep/lexer"
	"github.com/jsphweid/eabc2acep/line"
	"github.com/jsphweid/eabc2acep/model"
	"github.com/jsphweid/eabc2acep/pitch"
)

// State is everything that carries over from one content line to the next.
// Every method returns a new State; nothing is shared with the receiver except
// values that are never written in place.
type State struct {
	Params        model.ParamState
	Tick          int
	PendingLyrics []string

	// most recent non-empty, non-melisma lyric that was emitted
	LastLyric string
}

// LineState is the state that resets at the start of every content line.
type LineState struct {
	Inline   []string
	Lyrics   []string
	Syllable int
}

type Context struct {
	UnitLength string
	Key        keysig.Signature
}

func NewContext(m model.Metadata) Context {
	return Context{UnitLength: m.UnitLength, Key: keysig.Lookup(m.Key)}
}

// Lyrics queues the syllables of a w: line for the next content line,
// replacing anything already queued.
func (s State) Lyrics(syllables []string) State {
	s.PendingLyrics = syllables
	return s
}

// TakesFollowingLyrics reports whether a w: line directly after this content
// line belongs to it: nothing is queued from an earlier w: line and the line
// has pitched notes to sing.
func (s State) TakesFollowingLyrics(tokens []lexer.Token) bool {
	if len(s.PendingLyrics) > 0 {
		return false
	}
	for _, tok := range tokens {
		if tok.Kind == lexer.Note {
			return true
		}
	}
	return false
}

// BeginLine gathers the inline lyrics of a line and hands it the pending w:
// lyrics. Lines with nothing timed leave the queue alone.
func (s State) BeginLine(tokens []lexer.Token) (State, LineState) {
	var l LineState
	hasTimed := false
	for _, tok := range tokens {
		if tok.Kind == lexer.InlineLyric {
			l.Inline = append(l.Inline, tok.Text)
		}
		if tok.Timed() {
			hasTimed = true
		}
	}
	if hasTimed && len(s.PendingLyrics) > 0 {
		l.Lyrics = s.PendingLyrics
		s.PendingLyrics = nil
	}
	return s, l
}

// Step interprets a single token. It returns the emitted note, if any, and a
// warning when the token was skipped.
func (s State) Step(tok lexer.Token, l LineState, ctx Context) (State, LineState, *model.NoteEvent, string) {
	switch tok.Kind {
	case lexer.Param:
		params, warning := ApplyParam(s.Params, tok.Key, tok.Value)
		s.Params = params
		return s, l, nil, warning
	case lexer.Rest, lexer.Chord:
		ticks, err := duration.Ticks(tok.Multiplier, tok.Divisor, ctx.UnitLength)
		if err != nil {
			return s, l, nil, fmt.Sprintf("skipped %q: %v", tok.Text, err)
		}
		s.Tick += ticks
		return s, l, nil, ""
	case lexer.Note:
		return s.note(tok, l, ctx)
	case lexer.Invalid:
		return s, l, nil, fmt.Sprintf("skipped %q: %v", tok.Text, tok.Reason)
	}
	return s, l, nil, ""
}

func (s State) note(tok lexer.Token, l LineState, ctx Context) (State, LineState, *model.NoteEvent, string) {
	p, err := pitch.Parse(tok.Pitch)
	if err != nil {
		return s, l, nil, fmt.Sprintf("skipped %q: %v", tok.Text, err)
	}
	midi, err := p.Midi(ctx.Key)
	if err != nil {
		return s, l, nil, fmt.Sprintf("skipped %q: %v", tok.Text, err)
	}
	ticks, err := duration.Ticks(tok.Multiplier, tok.Divisor, ctx.UnitLength)
	if err != nil {
		return s, l, nil, fmt.Sprintf("skipped %q: %v", tok.Text, err)
	}

	lyric := l.resolve(s.LastLyric)
	evt := model.NoteEvent{
		Tick:     s.Tick,
		Duration: ticks,
		Pitch:    midi,
		Lyric:    lyric,
		Params:   s.Params.Clone(),
	}

	s.Tick += ticks
	s.Params.PitchDelta = nil
	if lyric != "" && !line.IsMelismaMarker(lyric) {
		s.LastLyric = lyric
	}
	l.Syllable++
	return s, l, &evt, ""
}

// resolve picks the lyric for the current syllable: inline lyrics win per
// index, then the w: line with melisma markers repeating the last sung
// syllable, then reuse of the last w: syllable once the line runs out.
func (l LineState) resolve(last string) string {
	if l.Syllable < len(l.Inline) {
		return l.Inline[l.Syllable]
	}
	if l.Syllable < len(l.Lyrics) {
		syl := l.Lyrics[l.Syllable]
		if line.IsMelismaMarker(syl) {
			return last
		}
		return syl
	}
	if len(l.Lyrics) > 0 {
		for i := len(l.Lyrics) - 1; i >= 0; i-- {
			if !line.IsMelismaMarker(l.Lyrics[i]) {
				return l.Lyrics[i]
			}
		}
		return last
	}
	return ""
}

// ScanLine runs every token of one content line through Step.
func (s State) ScanLine(tokens []lexer.Token, ctx Context) (State, []model.NoteEvent, []string) {
	var notes []model.NoteEvent
	var warnings []string

	s, l := s.BeginLine(tokens)
	for _, tok := range tokens {
		var evt *model.NoteEvent
		var warning string
		s, l, evt, warning = s.Step(tok, l, ctx)
		if evt != nil {
			notes = append(notes, *evt)
		}
		if warning != "" {
			warnings = append(warnings, fmt.Sprintf("col %d: %v", tok.Pos+1, warning))
		}
	}
	return s, notes, warnings
}
