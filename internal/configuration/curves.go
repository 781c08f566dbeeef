package configuration

type CurveConfig struct {
	ID         string                 `json:"id"`
	Hysteresis *HysteresisCurveConfig `json:"hysteresis,omitempty"`
}

type HysteresisCurveConfig struct {
	// Speeds are the discrete speed levels, from coldest to hottest zone
	Speeds []Speed `json:"speeds"`
	// Transitions are the temperatures separating two neighbouring speed levels
	Transitions []float64 `json:"transitions"`
	// Gap is subtracted from a transition once it has been crossed upwards
	Gap float64 `json:"gap"`
}

// SpeedValues returns the configured speeds as plain integers
func (c HysteresisCurveConfig) SpeedValues() []int {
	result := make([]int, len(c.Speeds))
	for i, speed := range c.Speeds {
		result[i] = int(speed)
	}
	return result
}
