package configuration

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpeed(t *testing.T) {
	tests := map[string]Speed{
		"0":     0,
		"128":   128,
		" 255 ": 255,
		"0%":    0,
		"50%":   128,
		"100%":  255,
		"25 %":  64,
	}

	for input, expected := range tests {
		// WHEN
		result, err := ParseSpeed(input)

		// THEN
		assert.NoError(t, err, input)
		assert.Equal(t, expected, result, input)
	}
}

func TestParseSpeed_Invalid(t *testing.T) {
	for _, input := range []string{"", "fast", "101%", "-5%", "%"} {
		// WHEN
		_, err := ParseSpeed(input)

		// THEN
		assert.Error(t, err, input)
	}
}

func TestSpeedHookFunc_IgnoresOtherTypes(t *testing.T) {
	// GIVEN
	hook := SpeedHookFunc()

	// WHEN
	result, err := hook(reflect.TypeOf(""), reflect.TypeOf(""), "50%")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "50%", result)
}

func TestSpeedHookFunc_PassesIntegers(t *testing.T) {
	// GIVEN
	hook := SpeedHookFunc()

	// WHEN
	result, err := hook(reflect.TypeOf(0), reflect.TypeOf(Speed(0)), 200)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 200, result)
}
