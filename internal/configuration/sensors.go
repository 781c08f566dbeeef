package configuration

import "time"

type SensorConfig struct {
	ID   string            `json:"id"`
	File *FileSensorConfig `json:"file,omitempty"`

	// FilterOrder is the window size of the moving average applied to the raw samples
	FilterOrder int `json:"filterOrder"`
	// PollingRate is the interval between two raw samples
	PollingRate time.Duration `json:"pollingRate"`
}

// FileSensorConfig describes a sensor that exposes a single integer value
// in millidegrees, like a hwmon temp*_input attribute.
type FileSensorConfig struct {
	Path string `json:"path"`
}
