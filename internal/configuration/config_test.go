package configuration

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
controllerTickRate: 2s
sensors:
  - id: chassis
    file:
      path: /sys/class/hwmon/hwmon1/temp1_input
    filterOrder: 4
    pollingRate: 1s
fans:
  - id: front
    file:
      path: /sys/class/hwmon/hwmon3/pwm1
  - id: userspace
    file:
      path: /run/fan/speed
      atomic: true
curves:
  - id: chassis_curve
    hysteresis:
      speeds: [0, "50%", 255]
      transitions: [42, 60]
      gap: 4
controls:
  - id: front_control
    fan: front
    sensor: chassis
    curve: chassis_curve
statistics:
  enabled: true
`

func readTestConfig(t *testing.T, content string) Configuration {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaultValues(v)
	err := v.ReadConfig(bytes.NewBufferString(content))
	require.NoError(t, err)

	config, err := decodeConfig(v)
	require.NoError(t, err)
	return config
}

func TestDecodeConfig(t *testing.T) {
	// WHEN
	config := readTestConfig(t, testConfig)

	// THEN
	assert.Equal(t, 2*time.Second, config.ControllerTickRate)

	assert.Len(t, config.Sensors, 1)
	sensor := config.Sensors[0]
	assert.Equal(t, "chassis", sensor.ID)
	assert.Equal(t, "/sys/class/hwmon/hwmon1/temp1_input", sensor.File.Path)
	assert.Equal(t, 4, sensor.FilterOrder)
	assert.Equal(t, time.Second, sensor.PollingRate)

	assert.Len(t, config.Fans, 2)
	assert.False(t, config.Fans[0].File.Atomic)
	assert.True(t, config.Fans[1].File.Atomic)

	assert.Len(t, config.Curves, 1)
	curve := config.Curves[0].Hysteresis
	assert.Equal(t, []int{0, 128, 255}, curve.SpeedValues())
	assert.Equal(t, []float64{42, 60}, curve.Transitions)
	assert.Equal(t, 4.0, curve.Gap)

	assert.Equal(t, []ControlConfig{
		{ID: "front_control", Fan: "front", Sensor: "chassis", Curve: "chassis_curve"},
	}, config.Controls)

	assert.True(t, config.Statistics.Enabled)
	assert.Equal(t, DefaultStatisticsPort, config.Statistics.Port)

	assert.NoError(t, validateConfig(&config))
}

func TestDecodeConfig_Defaults(t *testing.T) {
	// WHEN
	config := readTestConfig(t, "sensors: []\n")

	// THEN
	assert.Equal(t, DefaultControllerTickRate, config.ControllerTickRate)
	assert.False(t, config.Statistics.Enabled)
	assert.Equal(t, DefaultStatisticsPort, config.Statistics.Port)
}

func TestDecodeConfig_InvalidSpeed(t *testing.T) {
	// GIVEN
	v := viper.New()
	v.SetConfigType("yaml")
	err := v.ReadConfig(bytes.NewBufferString(`
curves:
  - id: broken
    hysteresis:
      speeds: [0, "fast"]
      transitions: [50]
`))
	require.NoError(t, err)

	// WHEN
	_, err = decodeConfig(v)

	// THEN
	assert.Error(t, err)
}
