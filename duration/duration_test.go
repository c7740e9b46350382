package duration

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseTicks(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(480, BaseTicks("1/4"))
	assert.Equal(240, BaseTicks("1/8"))
	assert.Equal(120, BaseTicks("1/16"))
	assert.Equal(960, BaseTicks("1/2"))
	assert.Equal(480, BaseTicks("1/32"))
	assert.Equal(480, BaseTicks(""))
}

func TestTicks(t *testing.T) {
	cases := []struct {
		mult, div int
		unit      string
		want      int
	}{
		{0, 0, "1/4", 480},
		{1, 0, "1/4", 480},
		{8, 0, "1/4", 3840},
		{2, 0, "1/8", 480},
		{0, 2, "1/4", 240},
		{3, 2, "1/4", 720},
		{0, 3, "1/4", 160},
		{0, 7, "1/16", 17},
		{4, 0, "1/2", 3840},
	}
	for _, c := range cases {
		name := fmt.Sprintf("%d/%d@%s", c.mult, c.div, c.unit)
		t.Run(name, func(t *testing.T) {
			got, err := Ticks(c.mult, c.div, c.unit)
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestTicksNeverNegative(t *testing.T) {
	for mult := 0; mult < 20; mult++ {
		for div := 0; div < 20; div++ {
			got, err := Ticks(mult, div, "1/16")
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0)
		}
	}
}

func TestTicksRejectsNegative(t *testing.T) {
	_, err := Ticks(-1, 0, "1/4")
	assert.ErrorIs(t, err, ErrMalformed)
}
