package configuration

import (
	"github.com/markusressel/hystfan/internal/ui"
	"github.com/markusressel/hystfan/internal/util"
	"golang.org/x/exp/slices"
)

// Validate checks CurrentConfig and returns a *util.ConfigError describing the first problem found
func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if config.ControllerTickRate <= 0 {
		return util.NewConfigError("controllerTickRate must be > 0, was %s", config.ControllerTickRate)
	}

	err := validateSensors(config)
	if err != nil {
		return err
	}
	err = validateFans(config)
	if err != nil {
		return err
	}
	err = validateCurves(config)
	if err != nil {
		return err
	}
	return validateControls(config)
}

func validateSensors(config *Configuration) error {
	var ids []string
	for _, sensorConfig := range config.Sensors {
		if len(sensorConfig.ID) <= 0 {
			return util.NewConfigError("sensor: missing id")
		}
		if slices.Contains(ids, sensorConfig.ID) {
			return util.NewConfigError("duplicate sensor id detected: %s", sensorConfig.ID)
		}
		ids = append(ids, sensorConfig.ID)

		if sensorConfig.File == nil {
			return util.NewConfigError("sensor %s: sub-configuration for sensor is missing, use one of: file", sensorConfig.ID)
		}
		if len(sensorConfig.File.Path) <= 0 {
			return util.NewConfigError("sensor %s: no file path provided", sensorConfig.ID)
		}

		if sensorConfig.FilterOrder < 1 {
			return util.NewConfigError("sensor %s: filterOrder must be >= 1, was %d", sensorConfig.ID, sensorConfig.FilterOrder)
		}
		if sensorConfig.PollingRate <= 0 {
			return util.NewConfigError("sensor %s: pollingRate must be > 0, was %s", sensorConfig.ID, sensorConfig.PollingRate)
		}

		if !isSensorConfigInUse(sensorConfig, config.Controls) {
			ui.Warning("Unused sensor configuration: %s", sensorConfig.ID)
		}
	}

	return nil
}

func isSensorConfigInUse(config SensorConfig, controls []ControlConfig) bool {
	for _, control := range controls {
		if control.Sensor == config.ID {
			return true
		}
	}
	return false
}

func validateFans(config *Configuration) error {
	var ids []string
	for _, fanConfig := range config.Fans {
		if len(fanConfig.ID) <= 0 {
			return util.NewConfigError("fan: missing id")
		}
		if slices.Contains(ids, fanConfig.ID) {
			return util.NewConfigError("duplicate fan id detected: %s", fanConfig.ID)
		}
		ids = append(ids, fanConfig.ID)

		if fanConfig.File == nil {
			return util.NewConfigError("fan %s: sub-configuration for fan is missing, use one of: file", fanConfig.ID)
		}
		if len(fanConfig.File.Path) <= 0 {
			return util.NewConfigError("fan %s: no file path provided", fanConfig.ID)
		}

		if !isFanConfigInUse(fanConfig, config.Controls) {
			ui.Warning("Unused fan configuration: %s", fanConfig.ID)
		}
	}

	return nil
}

func isFanConfigInUse(config FanConfig, controls []ControlConfig) bool {
	for _, control := range controls {
		if control.Fan == config.ID {
			return true
		}
	}
	return false
}

func validateCurves(config *Configuration) error {
	var ids []string
	for _, curveConfig := range config.Curves {
		if len(curveConfig.ID) <= 0 {
			return util.NewConfigError("curve: missing id")
		}
		if slices.Contains(ids, curveConfig.ID) {
			return util.NewConfigError("duplicate curve id detected: %s", curveConfig.ID)
		}
		ids = append(ids, curveConfig.ID)

		if curveConfig.Hysteresis == nil {
			return util.NewConfigError("curve %s: sub-configuration for curve is missing, use one of: hysteresis", curveConfig.ID)
		}

		err := ValidateHysteresisCurve(curveConfig.ID, curveConfig.Hysteresis.SpeedValues(), curveConfig.Hysteresis.Transitions, curveConfig.Hysteresis.Gap)
		if err != nil {
			return err
		}

		if !isCurveConfigInUse(curveConfig, config.Controls) {
			ui.Warning("Unused curve configuration: %s", curveConfig.ID)
		}
	}

	return nil
}

// ValidateHysteresisCurve checks the parameters of a hysteresis curve
func ValidateHysteresisCurve(id string, speeds []int, transitions []float64, gap float64) error {
	if len(speeds) != len(transitions)+1 {
		return util.NewConfigError("curve %s: expected %d speeds for %d transitions, got %d", id, len(transitions)+1, len(transitions), len(speeds))
	}
	for i := 1; i < len(transitions); i++ {
		if transitions[i] <= transitions[i-1] {
			return util.NewConfigError("curve %s: transitions must be strictly increasing, but %v follows %v", id, transitions[i], transitions[i-1])
		}
	}
	for _, speed := range speeds {
		if speed < MinSpeedValue || speed > MaxSpeedValue {
			return util.NewConfigError("curve %s: speed %d is out of range [%d..%d]", id, speed, MinSpeedValue, MaxSpeedValue)
		}
	}
	if gap < 0 {
		return util.NewConfigError("curve %s: gap must not be negative, was %v", id, gap)
	}
	return nil
}

func isCurveConfigInUse(config CurveConfig, controls []ControlConfig) bool {
	for _, control := range controls {
		if control.Curve == config.ID {
			return true
		}
	}
	return false
}

func validateControls(config *Configuration) error {
	var ids []string
	var usedFans []string
	for _, controlConfig := range config.Controls {
		if len(controlConfig.ID) <= 0 {
			return util.NewConfigError("control: missing id")
		}
		if slices.Contains(ids, controlConfig.ID) {
			return util.NewConfigError("duplicate control id detected: %s", controlConfig.ID)
		}
		ids = append(ids, controlConfig.ID)

		if len(controlConfig.Fan) <= 0 {
			return util.NewConfigError("control %s: missing fan reference", controlConfig.ID)
		}
		if !fanIdExists(controlConfig.Fan, config) {
			return util.NewConfigError("control %s: no fan definition with id '%s' found", controlConfig.ID, controlConfig.Fan)
		}
		if slices.Contains(usedFans, controlConfig.Fan) {
			return util.NewConfigError("control %s: fan '%s' is already driven by another control", controlConfig.ID, controlConfig.Fan)
		}
		usedFans = append(usedFans, controlConfig.Fan)

		if len(controlConfig.Sensor) <= 0 {
			return util.NewConfigError("control %s: missing sensor reference", controlConfig.ID)
		}
		if !sensorIdExists(controlConfig.Sensor, config) {
			return util.NewConfigError("control %s: no sensor definition with id '%s' found", controlConfig.ID, controlConfig.Sensor)
		}

		if len(controlConfig.Curve) <= 0 {
			return util.NewConfigError("control %s: missing curve reference", controlConfig.ID)
		}
		if !curveIdExists(controlConfig.Curve, config) {
			return util.NewConfigError("control %s: no curve definition with id '%s' found", controlConfig.ID, controlConfig.Curve)
		}
	}

	return nil
}

func sensorIdExists(sensorId string, config *Configuration) bool {
	for _, sensor := range config.Sensors {
		if sensor.ID == sensorId {
			return true
		}
	}
	return false
}

func fanIdExists(fanId string, config *Configuration) bool {
	for _, fan := range config.Fans {
		if fan.ID == fanId {
			return true
		}
	}
	return false
}

func curveIdExists(curveId string, config *Configuration) bool {
	for _, curve := range config.Curves {
		if curve.ID == curveId {
			return true
		}
	}
	return false
}
