package sensors

import (
	"github.com/markusressel/hystfan/internal/configuration"
	"github.com/markusressel/hystfan/internal/util"
)

const MilliDegreesPerDegree = 1000.0

// TemperatureSource reads raw temperature values from a hardware backed endpoint
type TemperatureSource interface {
	GetId() string

	// ReadRaw returns the current, unfiltered temperature in degrees
	ReadRaw() (float64, error)
}

// Sensor exposes the filtered temperature of a TemperatureSource
type Sensor interface {
	GetId() string

	// GetFiltered returns the most recently computed filtered temperature without blocking.
	// The value may lag behind the hardware by up to one polling period.
	GetFiltered() float64

	// Err returns the error that stopped the background polling, if any
	Err() error

	// Start begins polling in the background, does nothing if already running
	Start()
	// Stop ends polling and waits until the background task has exited,
	// does nothing if not running
	Stop()
}

func NewSource(config configuration.SensorConfig) (TemperatureSource, error) {
	if config.File != nil {
		path, err := util.ExpandPath(config.File.Path)
		if err != nil {
			return nil, util.NewConfigError("sensor %s: invalid path '%s': %v", config.ID, config.File.Path, err)
		}
		return &FileSource{
			ID:   config.ID,
			Path: path,
		}, nil
	}

	return nil, util.NewConfigError("no matching sensor type for sensor: %s", config.ID)
}

// NewSensor creates a polling sensor for the given config.
// This performs one synchronous read to seed the filter.
func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	source, err := NewSource(config)
	if err != nil {
		return nil, err
	}
	return NewPollingSensor(source, config.FilterOrder, config.PollingRate)
}
