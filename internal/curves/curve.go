package curves

import (
	"math"

	"github.com/markusressel/hystfan/internal/configuration"
	"github.com/markusressel/hystfan/internal/util"
)

// FailSafeTemperature is hotter than any configurable transition,
// so it always selects the highest zone of a curve
var FailSafeTemperature = math.Inf(1)

// SpeedCurve maps a filtered temperature to a fan speed.
// Implementations may be stateful, so the same input can yield different
// results depending on previous inputs.
type SpeedCurve interface {
	GetId() string

	// CalculateSpeed advances the curve with the given temperature (in degrees)
	// and returns the selected speed in [0..255]
	CalculateSpeed(temperature float64) int
}

func NewSpeedCurve(config configuration.CurveConfig) (SpeedCurve, error) {
	if config.Hysteresis != nil {
		curve, err := NewHysteresisSpeedCurve(
			config.ID,
			config.Hysteresis.SpeedValues(),
			config.Hysteresis.Transitions,
			config.Hysteresis.Gap,
		)
		if err != nil {
			return nil, err
		}
		return curve, nil
	}

	return nil, util.NewConfigError("no matching curve type for curve: %s", config.ID)
}
