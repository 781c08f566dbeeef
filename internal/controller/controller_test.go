package controller

import (
	"errors"
	"os"
	"testing"

	"github.com/markusressel/hystfan/internal/curves"
	"github.com/markusressel/hystfan/internal/util"
	"github.com/stretchr/testify/assert"
)

type mockSensor struct {
	id          string
	temperature float64
	err         error
	running     bool
	starts      int
	stops       int
}

func (s *mockSensor) GetId() string { return s.id }
func (s *mockSensor) GetFiltered() float64 { return s.temperature }
func (s *mockSensor) Err() error { return s.err }

func (s *mockSensor) Start() {
	s.running = true
	s.starts++
}

func (s *mockSensor) Stop() {
	s.running = false
	s.stops++
}

type mockFan struct {
	id     string
	speeds []int
	err    error
}

func (f *mockFan) GetId() string { return f.id }

func (f *mockFan) SetSpeed(speed int) error {
	if f.err != nil {
		return f.err
	}
	f.speeds = append(f.speeds, speed)
	return nil
}

func createLoop(t *testing.T) (FanControlLoop, *mockSensor, *mockFan) {
	sensor := &mockSensor{id: "sensor", temperature: 40}
	fan := &mockFan{id: "fan"}
	curve, err := curves.NewHysteresisSpeedCurve("curve", []int{0, 128, 255}, []float64{50, 60}, 5)
	assert.NoError(t, err)
	return NewFanControlLoop("control", sensor, curve, fan), sensor, fan
}

func TestFanControlLoop_Tick(t *testing.T) {
	// GIVEN
	loop, sensor, fan := createLoop(t)

	// WHEN
	for _, temperature := range []float64{40, 52, 48, 44} {
		sensor.temperature = temperature
		err := loop.Tick()
		assert.NoError(t, err)
	}

	// THEN
	assert.Equal(t, []int{0, 128, 128, 0}, fan.speeds)
	stats := loop.GetStatistics()
	assert.Equal(t, uint64(4), stats.Ticks)
	assert.Equal(t, 0, stats.Speed)
	assert.Equal(t, 44.0, stats.Temperature)
	assert.NoError(t, stats.LastError)
}

func TestFanControlLoop_Start(t *testing.T) {
	// GIVEN
	loop, sensor, _ := createLoop(t)

	// WHEN
	loop.Start()

	// THEN
	assert.True(t, sensor.running)
	assert.Equal(t, "control", loop.GetId())
}

func TestFanControlLoop_TickSensorFault(t *testing.T) {
	// GIVEN
	loop, sensor, fan := createLoop(t)
	sensor.err = util.NewIoError("read sensor", "/tmp/temp1_input", os.ErrNotExist)

	// WHEN
	err := loop.Tick()

	// THEN
	var ioError *util.IoError
	assert.ErrorAs(t, err, &ioError)
	assert.Empty(t, fan.speeds)
	assert.Equal(t, err, loop.GetStatistics().LastError)
}

func TestFanControlLoop_TickFanFault(t *testing.T) {
	// GIVEN
	loop, _, fan := createLoop(t)
	fan.err = util.NewIoError("write fan", "/tmp/pwm1", os.ErrPermission)

	// WHEN
	err := loop.Tick()

	// THEN
	assert.ErrorIs(t, err, os.ErrPermission)
	stats := loop.GetStatistics()
	assert.Equal(t, -1, stats.Speed)
	assert.Equal(t, uint64(1), stats.Ticks)
}

func TestFanControlLoop_ShutdownWritesMaxSpeed(t *testing.T) {
	for _, temperature := range []float64{0, 52, 70} {
		// GIVEN
		loop, sensor, fan := createLoop(t)
		loop.Start()
		sensor.temperature = temperature
		assert.NoError(t, loop.Tick())

		// WHEN
		err := loop.Shutdown()

		// THEN
		assert.NoError(t, err)
		assert.False(t, sensor.running)
		assert.Equal(t, 255, fan.speeds[len(fan.speeds)-1])
		assert.Equal(t, 255, loop.GetStatistics().Speed)
	}
}

func TestFanControlLoop_ShutdownIgnoresSensorFault(t *testing.T) {
	// GIVEN
	loop, sensor, fan := createLoop(t)
	sensor.err = errors.New("sensor gone")

	// WHEN
	err := loop.Shutdown()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []int{255}, fan.speeds)
	assert.Equal(t, 1, sensor.stops)
}

func TestFanControlLoop_ShutdownFanFault(t *testing.T) {
	// GIVEN
	loop, _, fan := createLoop(t)
	fan.err = util.NewIoError("write fan", "/tmp/pwm1", os.ErrPermission)

	// WHEN
	err := loop.Shutdown()

	// THEN
	var ioError *util.IoError
	assert.ErrorAs(t, err, &ioError)
}
