package curves

import (
	"github.com/markusressel/hystfan/internal/ui"
)

// LoggingSpeedCurve prints every evaluation of the wrapped curve
type LoggingSpeedCurve struct {
	SpeedCurve
}

func NewLoggingSpeedCurve(curve SpeedCurve) *LoggingSpeedCurve {
	if c, ok := curve.(*HysteresisSpeedCurve); ok {
		ui.Info("Created hysteresis curve '%s', speeds: %v, transitions: %v", c.GetId(), c.Speeds(), c.Transitions())
	}
	return &LoggingSpeedCurve{SpeedCurve: curve}
}

func (c *LoggingSpeedCurve) CalculateSpeed(temperature float64) int {
	speed := c.SpeedCurve.CalculateSpeed(temperature)
	ui.Info("Curve '%s': temp %.2f° -> speed %d", c.GetId(), temperature, speed)
	return speed
}

// Unwrap returns the decorated curve
func (c *LoggingSpeedCurve) Unwrap() SpeedCurve {
	return c.SpeedCurve
}
