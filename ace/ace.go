package ace

import (
	"strconv"
	"strings"

	"github.com/jsphweid/eabc2acep/model"
	"github.com/jsphweid/eabc2acep/util"
)

const (
	minTension, maxTension         = 0.5, 1.5
	minBreathiness, maxBreathiness = 0.0, 2.0
	minEnergy, maxEnergy           = 0.5, 1.5
	minFalsetto, maxFalsetto       = 0.0, 1.0
	minGender, maxGender           = 0.5, 1.5
	minPitchDelta, maxPitchDelta   = -200.0, 200.0
)

var dynamicsMarkings = map[string]float64{
	"pp":   0.5,
	"p":    0.7,
	"mp":   0.85,
	"mf":   1.0,
	"f":    1.2,
	"ff":   1.4,
	"fff":  1.5,
	"ffff": 1.5,
}

var registerFalsetto = map[string]float64{
	"falsetto": 1.0,
	"head":     0.8,
	"whistle":  1.0,
}

// preset is a partial vector; nil fields are left as computed.
type preset struct {
	tension     *float64
	breathiness *float64
	energy      *float64
}

func f(v float64) *float64 { return &v }

var expressionPresets = map[string]preset{
	"smile":   {tension: f(0.8), energy: f(1.2)},
	"cry":     {tension: f(1.3), breathiness: f(0.8)},
	"angry":   {tension: f(1.4), energy: f(1.4)},
	"breathy": {tension: f(0.7), breathiness: f(1.5)},
	"belt":    {tension: f(1.3), energy: f(1.5)},
}

func Default() model.AceVector {
	return model.AceVector{
		Tension:     1.0,
		Breathiness: 0.0,
		Energy:      1.0,
		Falsetto:    0.0,
		Gender:      1.0,
		PitchDelta:  0,
	}
}

// Map projects a parameter snapshot onto the six ACE dimensions.
func Map(params model.ParamState) model.AceVector {
	v := Default()

	if params.Tension != nil {
		v.Tension = 0.5 + *params.Tension/100
	}
	if params.Breathiness != nil {
		v.Breathiness = *params.Breathiness / 100 * 2.0
	}
	if params.Dynamics != nil {
		v.Energy = energy(*params.Dynamics)
	}
	if params.Register != nil {
		v.Falsetto = falsetto(*params.Register, params.RegisterBlend)
	}
	if params.Gender != nil {
		v.Gender = 0.5 + (*params.Gender+100)/200
	}
	if params.PitchDelta != nil {
		v.PitchDelta = *params.PitchDelta
	}

	if params.Expression != nil {
		if p, ok := expressionPresets[*params.Expression]; ok {
			if p.tension != nil {
				v.Tension = *p.tension
			}
			if p.breathiness != nil {
				v.Breathiness = *p.breathiness
			}
			if p.energy != nil {
				v.Energy = *p.energy
			}
		}
	}

	return clamp(v)
}

func energy(dynamics string) float64 {
	if v, ok := dynamicsMarkings[dynamics]; ok {
		return v
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(dynamics), 64); err == nil {
		return 0.5 + n/100
	}
	return 1.0
}

func falsetto(register string, blend *float64) float64 {
	if v, ok := registerFalsetto[register]; ok {
		return v
	}
	if register == "mixed" {
		if blend != nil {
			return *blend / 100
		}
		return 0.5
	}
	return 0.0
}

func clamp(v model.AceVector) model.AceVector {
	v.Tension = util.Clamp(v.Tension, minTension, maxTension)
	v.Breathiness = util.Clamp(v.Breathiness, minBreathiness, maxBreathiness)
	v.Energy = util.Clamp(v.Energy, minEnergy, maxEnergy)
	v.Falsetto = util.Clamp(v.Falsetto, minFalsetto, maxFalsetto)
	v.Gender = util.Clamp(v.Gender, minGender, maxGender)
	v.PitchDelta = util.Clamp(v.PitchDelta, minPitchDelta, maxPitchDelta)
	return v
}

// Vibrato converts EABC vibrato (depth 0-100, rate in tenths of Hz, delay in
// ticks) to ACE's note vibrato.
func Vibrato(v *model.Vibrato) *model.AceVibrato {
	if v == nil {
		return nil
	}
	return &model.AceVibrato{
		Depth:   float64(v.Depth) / 100,
		Rate:    float64(v.Rate) / 10,
		Attack:  v.Delay,
		Release: 100,
	}
}
