package project

import (
	"github.com/jsphweid/eabc2acep/ace"
	"github.com/jsphweid/eabc2acep/constants"
	"github.com/jsphweid/eabc2acep/model"
	"github.com/pkg/errors"
)

var ErrNoContent = errors.New("no notes to assemble")

// Assemble maps every note of the score and lays out the ACE Studio document.
func Assemble(score *model.Score) (*model.Project, error) {
	if score == nil || len(score.Notes) == 0 {
		return nil, ErrNoContent
	}

	notes := make([]model.AceNote, 0, len(score.Notes))
	for _, n := range score.Notes {
		notes = append(notes, makeNote(n, ace.Map(n.Params)))
	}

	name := score.Metadata.Title
	if name == "" {
		name = constants.DefaultTrackName
	}

	return &model.Project{
		Version:       constants.DocumentVersion,
		Tempo:         score.Metadata.Tempo,
		TimeSignature: score.Metadata.Meter,
		Key:           score.Metadata.Key,
		Tracks: []model.AceTrack{{
			Name:       name,
			Voice:      constants.DefaultVoice,
			Notes:      notes,
			Parameters: curves(notes),
		}},
		Metadata: metadata(score.Metadata),
	}, nil
}

func makeNote(n model.NoteEvent, v model.AceVector) model.AceNote {
	return model.AceNote{
		Pos:            n.Tick,
		Length:         n.Duration,
		Lyric:          n.Lyric,
		Pronunciation:  n.Lyric,
		Pitch:          n.Pitch,
		Velocity:       constants.DefaultVelocity,
		Selected:       false,
		Visible:        true,
		HeadConsonants: []int{},
		TailConsonants: []int{},
		Tension:        v.Tension,
		Breathiness:    v.Breathiness,
		Energy:         v.Energy,
		Falsetto:       v.Falsetto,
		Gender:         v.Gender,
		PitchDelta:     v.PitchDelta,
		Vibrato:        ace.Vibrato(n.Params.Vibrato),
	}
}

// curves builds one breakpoint per note for each ACE dimension. Notes are
// already in tick order.
func curves(notes []model.AceNote) model.AceParameters {
	p := model.AceParameters{
		Tension:     make([]model.Breakpoint, 0, len(notes)),
		Breathiness: make([]model.Breakpoint, 0, len(notes)),
		Energy:      make([]model.Breakpoint, 0, len(notes)),
		Falsetto:    make([]model.Breakpoint, 0, len(notes)),
		Gender:      make([]model.Breakpoint, 0, len(notes)),
		PitchDelta:  make([]model.Breakpoint, 0, len(notes)),
	}
	for _, n := range notes {
		p.Tension = append(p.Tension, model.Breakpoint{Tick: n.Pos, Value: n.Tension})
		p.Breathiness = append(p.Breathiness, model.Breakpoint{Tick: n.Pos, Value: n.Breathiness})
		p.Energy = append(p.Energy, model.Breakpoint{Tick: n.Pos, Value: n.Energy})
		p.Falsetto = append(p.Falsetto, model.Breakpoint{Tick: n.Pos, Value: n.Falsetto})
		p.Gender = append(p.Gender, model.Breakpoint{Tick: n.Pos, Value: n.Gender})
		p.PitchDelta = append(p.PitchDelta, model.Breakpoint{Tick: n.Pos, Value: n.PitchDelta})
	}
	return p
}

func metadata(m model.Metadata) map[string]string {
	res := map[string]string{
		"title":      m.Title,
		"composer":   m.Composer,
		"unitLength": m.UnitLength,
		"source":     "eabc",
	}
	return res
}
