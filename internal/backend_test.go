package internal

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/markusressel/hystfan/internal/controller"
	"github.com/markusressel/hystfan/internal/util"
	"github.com/stretchr/testify/assert"
)

type panickingControl struct {
	controller.FanControlLoop
}

func (p panickingControl) Tick() error {
	panic("impossible zone")
}

func TestRunSystem_StopsOnSignal(t *testing.T) {
	// GIVEN
	env := createTestEnvironment(t, "52000")
	system, err := NewFanControlSystem(env.config, SystemOptions{})
	assert.NoError(t, err)
	sig := make(chan os.Signal, 1)

	// WHEN
	go func() {
		time.Sleep(50 * time.Millisecond)
		sig <- syscall.SIGTERM
	}()
	err = runSystem(context.Background(), system, env.config, sig)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 128, readPwm(t, env.pwmPaths[0]))
	assert.GreaterOrEqual(t, system.Controls()[0].GetStatistics().Ticks, uint64(1))

	assert.NoError(t, system.Shutdown())
	assert.Equal(t, 255, readPwm(t, env.pwmPaths[0]))
}

func TestRunSystem_StopsOnContext(t *testing.T) {
	// GIVEN
	env := createTestEnvironment(t, "30000")
	system, err := NewFanControlSystem(env.config, SystemOptions{DryRun: true})
	assert.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// WHEN
	err = runSystem(ctx, system, env.config, make(chan os.Signal))

	// THEN
	assert.NoError(t, err)
	assert.NoError(t, system.Shutdown())
}

func TestRunSystem_StopsOnFanError(t *testing.T) {
	// GIVEN
	env := createTestEnvironment(t, "30000")
	system, err := NewFanControlSystem(env.config, SystemOptions{})
	assert.NoError(t, err)
	assert.NoError(t, os.Remove(env.pwmPaths[1]))

	// WHEN
	err = runSystem(context.Background(), system, env.config, make(chan os.Signal))

	// THEN
	var ioError *util.IoError
	assert.ErrorAs(t, err, &ioError)
	assert.Equal(t, env.pwmPaths[1], ioError.Path)

	_ = system.Shutdown()
	assert.Equal(t, 255, readPwm(t, env.pwmPaths[0]))
}

func TestRunSystem_RecoversPanic(t *testing.T) {
	// GIVEN
	env := createTestEnvironment(t, "30000")
	system, err := NewFanControlSystem(env.config, SystemOptions{})
	assert.NoError(t, err)
	system.controls[1] = panickingControl{FanControlLoop: system.controls[1]}

	// WHEN
	err = runSystem(context.Background(), system, env.config, make(chan os.Signal))

	// THEN
	var logicError *util.LogicError
	assert.ErrorAs(t, err, &logicError)

	assert.NoError(t, system.Shutdown())
	assert.Equal(t, 255, readPwm(t, env.pwmPaths[0]))
	assert.Equal(t, 200, readPwm(t, env.pwmPaths[1]))
}
