package fans

import (
	"github.com/markusressel/hystfan/internal/ui"
)

// LoggingFan prints every write to the wrapped fan
type LoggingFan struct {
	Fan
}

func NewLoggingFan(fan Fan) *LoggingFan {
	return &LoggingFan{Fan: fan}
}

func (fan *LoggingFan) SetSpeed(speed int) error {
	err := fan.Fan.SetSpeed(speed)
	if err != nil {
		ui.Warning("Fan '%s': writing speed %d failed: %v", fan.GetId(), speed, err)
		return err
	}
	ui.Debug("Fan '%s': speed %d", fan.GetId(), speed)
	return nil
}

// Unwrap returns the decorated fan
func (fan *LoggingFan) Unwrap() Fan {
	return fan.Fan
}
