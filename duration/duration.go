package duration

import (
	"math"

	"github.com/jsphweid/eabc2acep/constants"
	"github.com/pkg/errors"
)

var ErrMalformed = errors.New("malformed duration")

// BaseTicks is the length of one unit note in ticks.
func BaseTicks(unitLength string) int {
	switch unitLength {
	case "1/8":
		return constants.TicksPerQuarter / 2
	case "1/16":
		return constants.TicksPerQuarter / 4
	case "1/2":
		return constants.TicksPerQuarter * 2
	default:
		return constants.TicksPerQuarter
	}
}

// Ticks computes round(base * multiplier / divisor). A zero multiplier or
// divisor means the suffix was absent and counts as 1; negative values are
// rejected.
func Ticks(multiplier, divisor int, unitLength string) (int, error) {
	if multiplier < 0 || divisor < 0 {
		return 0, errors.Wrapf(ErrMalformed, "multiplier %d divisor %d", multiplier, divisor)
	}
	if multiplier == 0 {
		multiplier = 1
	}
	if divisor == 0 {
		divisor = 1
	}
	ticks := float64(BaseTicks(unitLength)) * float64(multiplier) / float64(divisor)
	return int(math.Round(ticks)), nil
}
