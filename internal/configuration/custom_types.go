package configuration

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const (
	MinSpeedValue = 0
	MaxSpeedValue = 255
)

// Speed is a fan speed level in [0..255].
// In the config it can be given as a plain integer or as a percentage string like "50%".
type Speed int

// SpeedHookFunc returns a mapstructure decode hook that converts percentage strings to Speed values
func SpeedHookFunc() mapstructure.DecodeHookFuncType {
	speedType := reflect.TypeOf(Speed(0))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != speedType {
			return data, nil
		}

		text, ok := data.(string)
		if !ok {
			return data, nil
		}
		return ParseSpeed(text)
	}
}

// ParseSpeed parses a plain integer or a percentage of MaxSpeedValue like "50%"
func ParseSpeed(text string) (Speed, error) {
	text = strings.TrimSpace(text)
	if percentText, isPercent := strings.CutSuffix(text, "%"); isPercent {
		percent, err := strconv.ParseFloat(strings.TrimSpace(percentText), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse speed %q: %w", text, err)
		}
		if percent < 0 || percent > 100 {
			return 0, fmt.Errorf("speed %q is out of range [0%%..100%%]", text)
		}
		return Speed(math.Round(percent / 100 * MaxSpeedValue)), nil
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("cannot parse speed %q: %w", text, err)
	}
	return Speed(value), nil
}
