package controller

import (
	"sync"

	"github.com/markusressel/hystfan/internal/curves"
	"github.com/markusressel/hystfan/internal/fans"
	"github.com/markusressel/hystfan/internal/sensors"
	"github.com/markusressel/hystfan/internal/ui"
)

// FanControlLoop binds one sensor, one curve and one fan.
// The sensor may be shared with other loops, the curve is owned exclusively.
type FanControlLoop interface {
	GetId() string

	// Start starts the background polling of the bound sensor
	Start()

	// Tick reads the filtered temperature, advances the curve and writes the resulting speed
	Tick() error

	// Shutdown stops the sensor and writes the highest speed of the curve to the fan
	Shutdown() error

	GetStatistics() Statistics
}

// Statistics is a snapshot of the state of a FanControlLoop
type Statistics struct {
	Temperature float64
	Speed       int
	Ticks       uint64
	LastError   error
}

type fanControlLoop struct {
	id     string
	sensor sensors.Sensor
	curve  curves.SpeedCurve
	fan    fans.Fan

	// guards stats, Tick and Shutdown run on the control goroutine
	// while stats are read by the statistics exporter
	mu    sync.Mutex
	stats Statistics
}

func NewFanControlLoop(id string, sensor sensors.Sensor, curve curves.SpeedCurve, fan fans.Fan) FanControlLoop {
	return &fanControlLoop{
		id:     id,
		sensor: sensor,
		curve:  curve,
		fan:    fan,
		stats:  Statistics{Speed: -1},
	}
}

func (l *fanControlLoop) GetId() string {
	return l.id
}

func (l *fanControlLoop) Start() {
	ui.Info("Starting control '%s' (sensor: %s, fan: %s, curve: %s)",
		l.id, l.sensor.GetId(), l.fan.GetId(), l.curve.GetId())
	l.sensor.Start()
}

func (l *fanControlLoop) Tick() error {
	if err := l.sensor.Err(); err != nil {
		l.recordError(err)
		return err
	}

	temperature := l.sensor.GetFiltered()
	speed := l.curve.CalculateSpeed(temperature)
	ui.Debug("Control '%s': %.2f° -> %d", l.id, temperature, speed)

	err := l.fan.SetSpeed(speed)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.stats.Ticks++
	l.stats.Temperature = temperature
	if err != nil {
		l.stats.LastError = err
		return err
	}
	l.stats.Speed = speed
	return nil
}

func (l *fanControlLoop) Shutdown() error {
	l.sensor.Stop()

	speed := l.curve.CalculateSpeed(curves.FailSafeTemperature)
	ui.Info("Control '%s': setting fan '%s' to fail-safe speed %d", l.id, l.fan.GetId(), speed)

	err := l.fan.SetSpeed(speed)
	if err != nil {
		ui.Error("Control '%s': unable to set fail-safe speed, make sure fan '%s' is running! %v", l.id, l.fan.GetId(), err)
		l.recordError(err)
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.stats.Speed = speed
	return nil
}

func (l *fanControlLoop) GetStatistics() Statistics {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

func (l *fanControlLoop) recordError(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stats.LastError = err
}
