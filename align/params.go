package align

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/eabc2acep/model"
)

const (
	defaultVibratoDepth = 50
	defaultVibratoRate  = 40
	defaultVibratoDelay = 0
)

// EABC parameters ACE Studio has no dimension for
var unsupportedParams = map[string]bool{
	"fry": true, "growl": true, "sub": true, "harm": true, "shim": true,
	"vibjit": true, "vibmod": true,
	"tng": true, "jaw": true, "lip": true, "res": true, "width": true, "bright": true,
	"env": true, "onset": true, "offset": true, "swing": true, "ph": true,
	"comp": true, "riff": true,
}

// ApplyParam returns params with key set to value. The returned warning is
// non-empty when the token was dropped for a reason worth reporting.
func ApplyParam(params model.ParamState, key, value string) (model.ParamState, string) {
	if value == "" {
		return params, ""
	}
	switch key {
	case "ten", "wt", "intense":
		v, err := parseNumber(key, value)
		if err != "" {
			return params, err
		}
		params.Tension = &v
	case "br", "air":
		v, err := parseNumber(key, value)
		if err != "" {
			return params, err
		}
		params.Breathiness = &v
	case "dyn", "eff":
		v := dynamicsTarget(value)
		params.Dynamics = &v
	case "gen", "fmt", "age":
		v, err := parseNumber(key, value)
		if err != "" {
			return params, err
		}
		params.Gender = &v
	case "reg":
		parts := strings.Split(value, ",")
		reg := strings.TrimSpace(parts[0])
		params.Register = &reg
		if len(parts) > 1 {
			if blend, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
				params.RegisterBlend = &blend
			}
		}
	case "bend", "scoop", "fall", "glide":
		first := strings.Split(value, ",")[0]
		v, err := parseNumber(key, first)
		if err != "" {
			return params, err
		}
		params.PitchDelta = &v
	case "vib":
		params.Vibrato = parseVibrato(value)
	case "expr":
		expr := value
		params.Expression = &expr
	default:
		if unsupportedParams[key] {
			return params, fmt.Sprintf("unsupported parameter %q", key)
		}
	}
	return params, ""
}

func parseNumber(key, value string) (float64, string) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Sprintf("parameter %q has non-numeric value %q", key, value)
	}
	return v, ""
}

// dynamicsTarget picks the target of a hairpin such as "p<f"; plain values
// pass through.
func dynamicsTarget(value string) string {
	i := strings.IndexAny(value, "<>")
	if i < 0 {
		return value
	}
	target := strings.TrimSpace(value[i+1:])
	if target == "" {
		return strings.TrimSpace(value[:i])
	}
	return target
}

func parseVibrato(value string) *model.Vibrato {
	parts := strings.Split(value, ",")
	get := func(i int, def int) int {
		if i >= len(parts) {
			return def
		}
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return def
		}
		return v
	}
	return &model.Vibrato{
		Depth: get(0, defaultVibratoDepth),
		Rate:  get(1, defaultVibratoRate),
		Delay: get(2, defaultVibratoDelay),
	}
}
