package internal

import (
	"errors"

	"github.com/markusressel/hystfan/internal/configuration"
	"github.com/markusressel/hystfan/internal/controller"
	"github.com/markusressel/hystfan/internal/curves"
	"github.com/markusressel/hystfan/internal/fans"
	"github.com/markusressel/hystfan/internal/sensors"
	"github.com/markusressel/hystfan/internal/ui"
	"github.com/markusressel/hystfan/internal/util"
	cmap "github.com/orcaman/concurrent-map/v2"
)

type SystemOptions struct {
	// DryRun replaces all sensors and fans with stubs that do not touch any hardware
	DryRun bool
	// DryRunTemperature is reported by the stub sensors when DryRun is set
	DryRunTemperature float64
	// Verbose wraps fans and curves with logging decorators
	Verbose bool
}

// FanControlSystem owns all sensors and control loops of one configuration
type FanControlSystem struct {
	sensors     cmap.ConcurrentMap[string, sensors.Sensor]
	sensorOrder []string
	controls    []controller.FanControlLoop
}

// NewFanControlSystem builds sensors, fans, curves and controls in this order.
// Nothing is started and no fan is written to.
func NewFanControlSystem(config configuration.Configuration, options SystemOptions) (*FanControlSystem, error) {
	system := &FanControlSystem{
		sensors: cmap.New[sensors.Sensor](),
	}

	sensorConfigs := map[string]configuration.SensorConfig{}
	for _, sensorConfig := range config.Sensors {
		sensorConfigs[sensorConfig.ID] = sensorConfig
	}
	fanConfigs := map[string]configuration.FanConfig{}
	for _, fanConfig := range config.Fans {
		fanConfigs[fanConfig.ID] = fanConfig
	}
	curveConfigs := map[string]configuration.CurveConfig{}
	for _, curveConfig := range config.Curves {
		curveConfigs[curveConfig.ID] = curveConfig
	}

	// sensors may be shared between controls, only create them once
	for _, controlConfig := range config.Controls {
		if system.sensors.Has(controlConfig.Sensor) {
			continue
		}
		sensorConfig, ok := sensorConfigs[controlConfig.Sensor]
		if !ok {
			return nil, util.NewConfigError("control %s: no sensor definition with id '%s' found", controlConfig.ID, controlConfig.Sensor)
		}
		sensor, err := createSensor(sensorConfig, options)
		if err != nil {
			return nil, err
		}
		system.sensors.Set(sensorConfig.ID, sensor)
		system.sensorOrder = append(system.sensorOrder, sensorConfig.ID)
	}

	usedFans := map[string]bool{}
	for _, controlConfig := range config.Controls {
		fanConfig, ok := fanConfigs[controlConfig.Fan]
		if !ok {
			return nil, util.NewConfigError("control %s: no fan definition with id '%s' found", controlConfig.ID, controlConfig.Fan)
		}
		if usedFans[fanConfig.ID] {
			return nil, util.NewConfigError("control %s: fan '%s' is already driven by another control", controlConfig.ID, fanConfig.ID)
		}
		usedFans[fanConfig.ID] = true

		fan, err := createFan(fanConfig, options)
		if err != nil {
			return nil, err
		}

		curveConfig, ok := curveConfigs[controlConfig.Curve]
		if !ok {
			return nil, util.NewConfigError("control %s: no curve definition with id '%s' found", controlConfig.ID, controlConfig.Curve)
		}
		curve, err := createCurve(curveConfig, options)
		if err != nil {
			return nil, err
		}

		sensor, _ := system.sensors.Get(controlConfig.Sensor)
		system.controls = append(system.controls, controller.NewFanControlLoop(controlConfig.ID, sensor, curve, fan))
	}

	return system, nil
}

func createSensor(config configuration.SensorConfig, options SystemOptions) (sensors.Sensor, error) {
	if options.DryRun {
		return sensors.NewStubSensor(config.ID, options.DryRunTemperature), nil
	}
	return sensors.NewSensor(config)
}

func createFan(config configuration.FanConfig, options SystemOptions) (fans.Fan, error) {
	var fan fans.Fan
	if options.DryRun {
		fan = fans.NewStubFan(config.ID)
	} else {
		var err error
		fan, err = fans.NewFan(config)
		if err != nil {
			return nil, err
		}
	}
	if options.Verbose {
		fan = fans.NewLoggingFan(fan)
	}
	return fan, nil
}

// createCurve returns a new curve instance, curves hold state and are never shared
func createCurve(config configuration.CurveConfig, options SystemOptions) (curves.SpeedCurve, error) {
	curve, err := curves.NewSpeedCurve(config)
	if err != nil {
		return nil, err
	}
	if options.DryRun || options.Verbose {
		return curves.NewLoggingSpeedCurve(curve), nil
	}
	return curve, nil
}

// Start starts the background polling of all sensors
func (s *FanControlSystem) Start() {
	for _, control := range s.controls {
		control.Start()
	}
}

// Update runs one control cycle for every control.
// All controls are ticked even if one of them fails.
func (s *FanControlSystem) Update() error {
	var errs []error
	for _, control := range s.controls {
		if err := control.Tick(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Shutdown stops all sensors and sets every fan to the highest speed of its curve.
// Every control is shut down, even if some of them fail.
func (s *FanControlSystem) Shutdown() error {
	ui.Info("Shutting down, setting all fans to fail-safe speed...")
	var errs []error
	for _, control := range s.controls {
		if err := control.Shutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *FanControlSystem) Controls() []controller.FanControlLoop {
	return s.controls
}

// Sensors returns all sensors in the order they were created
func (s *FanControlSystem) Sensors() []sensors.Sensor {
	result := make([]sensors.Sensor, 0, len(s.sensorOrder))
	for _, id := range s.sensorOrder {
		if sensor, ok := s.sensors.Get(id); ok {
			result = append(result, sensor)
		}
	}
	return result
}
