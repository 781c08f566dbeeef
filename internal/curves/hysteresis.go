package curves

import (
	"github.com/markusressel/hystfan/internal/configuration"
)

type transitionState int

const (
	stateHigh transitionState = iota
	stateLow
)

// transitionPoint separates two neighbouring zones.
// Once crossed upwards it is lowered by gap, so the temperature
// has to fall below value-gap to return to the lower zone.
type transitionPoint struct {
	value float64
	gap   float64
	state transitionState
}

func (p transitionPoint) effectiveValue() float64 {
	if p.state == stateLow {
		return p.value - p.gap
	}
	return p.value
}

// HysteresisSpeedCurve selects one of a fixed set of speeds.
// transitions[i] separates speeds[i] from speeds[i+1].
//
// At any time the transitions below the current zone are in low state and
// all others in high state.
type HysteresisSpeedCurve struct {
	ID           string
	speeds       []int
	transitions  []transitionPoint
	currentSpeed int
}

// NewHysteresisSpeedCurve requires len(speeds) == len(transitions)+1 and strictly increasing transitions
func NewHysteresisSpeedCurve(id string, speeds []int, transitions []float64, gap float64) (*HysteresisSpeedCurve, error) {
	err := configuration.ValidateHysteresisCurve(id, speeds, transitions, gap)
	if err != nil {
		return nil, err
	}

	points := make([]transitionPoint, len(transitions))
	for i, value := range transitions {
		points[i] = transitionPoint{value: value, gap: gap, state: stateHigh}
	}

	return &HysteresisSpeedCurve{
		ID:           id,
		speeds:       append([]int(nil), speeds...),
		transitions:  points,
		currentSpeed: speeds[0],
	}, nil
}

func (c *HysteresisSpeedCurve) GetId() string {
	return c.ID
}

func (c *HysteresisSpeedCurve) CalculateSpeed(temperature float64) int {
	zone := c.zoneIndex(temperature)
	speed := c.speeds[zone]
	if speed != c.currentSpeed {
		c.currentSpeed = speed
		c.updateTransitions(zone)
	}
	return speed
}

// CurrentSpeed returns the speed selected by the last call to CalculateSpeed
func (c *HysteresisSpeedCurve) CurrentSpeed() int {
	return c.currentSpeed
}

// Speeds returns a copy of the configured speed levels
func (c *HysteresisSpeedCurve) Speeds() []int {
	return append([]int(nil), c.speeds...)
}

// Transitions returns the nominal transition temperatures
func (c *HysteresisSpeedCurve) Transitions() []float64 {
	result := make([]float64, len(c.transitions))
	for i, t := range c.transitions {
		result[i] = t.value
	}
	return result
}

// EffectiveTransitions returns the transition temperatures including the hysteresis offset
func (c *HysteresisSpeedCurve) EffectiveTransitions() []float64 {
	result := make([]float64, len(c.transitions))
	for i, t := range c.transitions {
		result[i] = t.effectiveValue()
	}
	return result
}

// zoneIndex counts the transitions whose effective value is <= temperature.
// A temperature equal to a transition belongs to the zone above.
func (c *HysteresisSpeedCurve) zoneIndex(temperature float64) int {
	index := 0
	for _, t := range c.transitions {
		if t.effectiveValue() > temperature {
			break
		}
		index++
	}
	return index
}

func (c *HysteresisSpeedCurve) updateTransitions(zone int) {
	for i := range c.transitions {
		if i < zone {
			c.transitions[i].state = stateLow
		} else {
			c.transitions[i].state = stateHigh
		}
	}
}
