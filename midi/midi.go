package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jsphweid/eabc2acep/constants"
	"github.com/jsphweid/eabc2acep/model"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const channel = 0

// Export renders the score timeline as a single-track SMF. Lyrics become
// lyric meta events placed right before the note they belong to.
func Export(score *model.Score) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	name := score.Metadata.Title
	if name == "" {
		name = constants.DefaultTrackName
	}

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(name))
	tr.Add(0, smf.MetaTempo(float64(score.Metadata.Tempo)))
	if num, denom, ok := parseMeter(score.Metadata.Meter); ok {
		tr.Add(0, smf.MetaMeter(num, denom))
	}

	var last int
	for _, n := range score.Notes {
		if n.Tick < last {
			return nil, errors.Errorf("note at tick %d overlaps previous note ending at %d", n.Tick, last)
		}
		delta := uint32(n.Tick - last)
		if n.Lyric != "" {
			tr.Add(delta, smf.MetaLyric(n.Lyric))
			delta = 0
		}
		key := uint8(n.Pitch)
		tr.Add(delta, gomidi.NoteOn(channel, key, constants.DefaultVelocity))
		tr.Add(uint32(n.Duration), gomidi.NoteOff(channel, key))
		last = n.Tick + n.Duration
	}

	end := score.EndTick - last
	if end < 0 {
		end = 0
	}
	tr.Close(uint32(end))

	if err := s.Add(tr); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return s, nil
}

func Write(w io.Writer, score *model.Score) error {
	s, err := Export(score)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write midi")
	}
	return nil
}

func parseMeter(meter string) (uint8, uint8, bool) {
	num, denom, found := strings.Cut(meter, "/")
	if !found {
		return 0, 0, false
	}
	n, err := strconv.ParseUint(strings.TrimSpace(num), 10, 8)
	if err != nil || n == 0 {
		return 0, 0, false
	}
	d, err := strconv.ParseUint(strings.TrimSpace(denom), 10, 8)
	if err != nil || d == 0 {
		return 0, 0, false
	}
	return uint8(n), uint8(d), true
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "Error reading midi file...")
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "Error parsing midi file...")
	}

	return res, nil
}

// ReadNotes recovers the note timeline from an exported file. Only ticks,
// durations, pitches and lyrics survive the round trip.
func ReadNotes(s *smf.SMF) []model.NoteEvent {
	var res []model.NoteEvent
	for _, events := range s.Tracks {
		var absTicks int
		var lyric string
		open := make(map[uint8]int)
		for _, event := range events {
			absTicks += int(event.Delta)
			var ch, key, vel uint8
			var text string
			switch {
			case event.Message.GetMetaLyric(&text):
				lyric = text
			case event.Message.GetNoteOn(&ch, &key, &vel) && vel > 0:
				open[key] = len(res)
				res = append(res, model.NoteEvent{Tick: absTicks, Pitch: int(key), Lyric: lyric})
				lyric = ""
			case event.Message.GetNoteOff(&ch, &key, &vel),
				event.Message.GetNoteOn(&ch, &key, &vel):
				if i, ok := open[key]; ok {
					res[i].Duration = absTicks - res[i].Tick
					delete(open, key)
				}
			}
		}
	}
	return res
}

// Describe prints one line per note, used by the inspect command.
func Describe(w io.Writer, notes []model.NoteEvent) {
	for _, n := range notes {
		fmt.Fprintf(w, "%8d %6d %4d %q\n", n.Tick, n.Duration, n.Pitch, n.Lyric)
	}
}
