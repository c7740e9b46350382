package model

type AceVector struct {
	Tension     float64
	Breathiness float64
	Energy      float64
	Falsetto    float64
	Gender      float64
	PitchDelta  float64
}

type AceVibrato struct {
	Depth   float64 `json:"depth"`
	Rate    float64 `json:"rate"`
	Attack  int     `json:"attack"`
	Release int     `json:"release"`
}

type AceNote struct {
	Pos            int         `json:"pos"`
	Length         int         `json:"length"`
	Lyric          string      `json:"lyric"`
	Pronunciation  string      `json:"pronunciation"`
	Pitch          int         `json:"pitch"`
	Velocity       int         `json:"velocity"`
	Selected       bool        `json:"selected"`
	Visible        bool        `json:"visible"`
	HeadConsonants []int       `json:"headConsonants"`
	TailConsonants []int       `json:"tailConsonants"`
	Tension        float64     `json:"tension"`
	Breathiness    float64     `json:"breathiness"`
	Energy         float64     `json:"energy"`
	Falsetto       float64     `json:"falsetto"`
	Gender         float64     `json:"gender"`
	PitchDelta     float64     `json:"pitchDelta"`
	Vibrato        *AceVibrato `json:"vibrato,omitempty"`
}

type Breakpoint struct {
	Tick  int     `json:"tick"`
	Value float64 `json:"value"`
}

type AceParameters struct {
	Tension     []Breakpoint `json:"tension"`
	Breathiness []Breakpoint `json:"breathiness"`
	Energy      []Breakpoint `json:"energy"`
	Falsetto    []Breakpoint `json:"falsetto"`
	Gender      []Breakpoint `json:"gender"`
	PitchDelta  []Breakpoint `json:"pitchDelta"`
}

type AceTrack struct {
	Name       string        `json:"name"`
	Voice      string        `json:"voice"`
	Notes      []AceNote     `json:"notes"`
	Parameters AceParameters `json:"parameters"`
}

// Project is the document ACE Studio reads out of the envelope content. Field
// names are fixed by the consumer.
type Project struct {
	Version       string            `json:"version"`
	Tempo         int               `json:"tempo"`
	TimeSignature string            `json:"timeSignature"`
	Key           string            `json:"key"`
	Tracks        []AceTrack        `json:"tracks"`
	Metadata      map[string]string `json:"metadata"`
}
