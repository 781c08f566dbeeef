package fans

import (
	"github.com/markusressel/hystfan/internal/configuration"
	"github.com/markusressel/hystfan/internal/util"
)

const (
	MaxPwmValue = configuration.MaxSpeedValue
	MinPwmValue = configuration.MinSpeedValue
)

// Fan is a sink for speed values in [MinPwmValue..MaxPwmValue]
type Fan interface {
	GetId() string

	// SetSpeed writes the given speed to the hardware backed endpoint
	SetSpeed(speed int) error
}

func NewFan(config configuration.FanConfig) (Fan, error) {
	if config.File != nil {
		path, err := util.ExpandPath(config.File.Path)
		if err != nil {
			return nil, util.NewConfigError("fan %s: invalid path '%s': %v", config.ID, config.File.Path, err)
		}
		return &FileFan{
			ID:     config.ID,
			Path:   path,
			Atomic: config.File.Atomic,
		}, nil
	}

	return nil, util.NewConfigError("no matching fan type for fan: %s", config.ID)
}
