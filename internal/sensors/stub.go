package sensors

import (
	"github.com/markusressel/hystfan/internal/ui"
)

// StubSensor reports a fixed temperature without touching any hardware
type StubSensor struct {
	ID          string
	Temperature float64
	running     bool
}

func NewStubSensor(id string, temperature float64) *StubSensor {
	ui.Info("StubSensor for %s created, reporting %.1f°", id, temperature)
	return &StubSensor{
		ID:          id,
		Temperature: temperature,
	}
}

func (sensor *StubSensor) GetId() string {
	return sensor.ID
}

func (sensor *StubSensor) GetFiltered() float64 {
	return sensor.Temperature
}

func (sensor *StubSensor) Err() error {
	return nil
}

func (sensor *StubSensor) Start() {
	if sensor.running {
		return
	}
	sensor.running = true
	ui.Info("StubSensor for %s started", sensor.ID)
}

func (sensor *StubSensor) Stop() {
	if !sensor.running {
		return
	}
	sensor.running = false
	ui.Info("StubSensor for %s stopped", sensor.ID)
}
