package curve

import (
	"testing"

	"github.com/markusressel/hystfan/internal/configuration"
	"github.com/markusressel/hystfan/internal/curves"
	"github.com/stretchr/testify/assert"
)

func TestSweepRange(t *testing.T) {
	// WHEN
	start, stop := sweepRange([]float64{50, 60}, 5)

	// THEN
	assert.Equal(t, 40.0, start)
	assert.Equal(t, 70.0, stop)
}

func TestSweep_ShowsHysteresis(t *testing.T) {
	// GIVEN
	curve, err := curves.NewHysteresisSpeedCurve("test", []int{0, 255}, []float64{50}, 5)
	assert.NoError(t, err)

	// WHEN
	rising, falling := sweep(curve, 40, 60)

	// THEN
	assert.Len(t, rising, 41)
	assert.Len(t, falling, 41)
	// index 16 is 48°, below the transition on the way up, above value-gap on the way down
	assert.Equal(t, 0.0, rising[16])
	assert.Equal(t, 255.0, falling[16])
	// index 20 is exactly the transition
	assert.Equal(t, 255.0, rising[20])
	// index 9 is 44.5°, below value-gap
	assert.Equal(t, 0.0, falling[9])
}

func TestGetCurveConfig(t *testing.T) {
	// GIVEN
	configs := []configuration.CurveConfig{{ID: "a"}, {ID: "b"}}

	// WHEN
	result, err := getCurveConfig("b", configs)
	_, missingErr := getCurveConfig("c", configs)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "b", result.ID)
	assert.Error(t, missingErr)
}

func TestParseTemperatures(t *testing.T) {
	// WHEN
	result, err := parseTemperatures([]string{"49", "60.5", "-3"})
	_, invalidErr := parseTemperatures([]string{"hot"})

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []float64{49, 60.5, -3}, result)
	assert.Error(t, invalidErr)
}
