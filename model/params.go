package model

type Vibrato struct {
	Depth int
	Rate  int
	Delay int
}

// ParamState is the expressive state carried from token to token. A nil field
// means the parameter was never set.
type ParamState struct {
	Tension       *float64
	Breathiness   *float64
	Dynamics      *string
	Vibrato       *Vibrato
	Register      *string
	RegisterBlend *float64
	Gender        *float64
	PitchDelta    *float64
	Expression    *string
}

// Clone returns a deep copy so later writes to the live state never leak into
// a note that was already emitted.
func (p ParamState) Clone() ParamState {
	return ParamState{
		Tension:       cloneFloat(p.Tension),
		Breathiness:   cloneFloat(p.Breathiness),
		Dynamics:      cloneString(p.Dynamics),
		Vibrato:       cloneVibrato(p.Vibrato),
		Register:      cloneString(p.Register),
		RegisterBlend: cloneFloat(p.RegisterBlend),
		Gender:        cloneFloat(p.Gender),
		PitchDelta:    cloneFloat(p.PitchDelta),
		Expression:    cloneString(p.Expression),
	}
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneVibrato(v *Vibrato) *Vibrato {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
