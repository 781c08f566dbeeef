package internal

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markusressel/hystfan/internal/configuration"
	"github.com/markusressel/hystfan/internal/statistics"
	"github.com/markusressel/hystfan/internal/ui"
	"github.com/markusressel/hystfan/internal/util"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
)

const statisticsShutdownTimeout = 5 * time.Second

// RunDaemon builds the system from the current configuration and controls the fans
// until a termination signal is received or an error occurs.
// All fans are set to their fail-safe speed before the process exits.
func RunDaemon(options SystemOptions) {
	if !options.DryRun && os.Geteuid() != 0 {
		ui.Warning("Fan control usually requires root permissions to be able to modify fan speeds")
	}

	config := configuration.CurrentConfig
	system, err := NewFanControlSystem(config, options)
	if err != nil {
		ui.ErrorAndNotify("Startup failed", "Unable to create fan control system: %v", err)
		os.Exit(1)
	}
	if len(system.Controls()) <= 0 {
		ui.FatalWithoutStacktrace("No controls configured, exiting.")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sig)

	runErr := runSystem(context.Background(), system, config, sig)
	shutdownErr := system.Shutdown()

	if runErr != nil || shutdownErr != nil {
		ui.ErrorAndNotify("Fan control stopped", "%v", errors.Join(runErr, shutdownErr))
		os.Exit(1)
	}
	ui.Info("Done.")
	os.Exit(0)
}

// runSystem starts the system and runs the control cycle until ctx is done,
// a signal is received or a control cycle fails.
// The caller is responsible for shutting the system down afterwards.
func runSystem(ctx context.Context, system *FanControlSystem, config configuration.Configuration, sig <-chan os.Signal) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g run.Group
	{
		// === control cycle
		g.Add(func() error {
			system.Start()
			if err := safeUpdate(system); err != nil {
				return err
			}

			ticker := time.NewTicker(config.ControllerTickRate)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := safeUpdate(system); err != nil {
						return err
					}
				}
			}
		}, func(err error) {
			if err != nil {
				ui.Error("Error in control cycle: %v", err)
			}
			cancel()
		})
	}
	{
		// === termination signals
		g.Add(func() error {
			select {
			case s := <-sig:
				ui.Info("Received %s signal, exiting...", s)
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			cancel()
		})
	}
	if config.Statistics.Enabled {
		// === Prometheus Exporter
		registry := prometheus.NewRegistry()
		err := statistics.Register(registry,
			statistics.NewSensorCollector(system.Sensors()),
			statistics.NewControllerCollector(system.Controls()),
		)
		if err != nil {
			return err
		}
		server := statistics.NewServer(registry)
		address := statistics.Address(config.Statistics.Port)

		g.Add(func() error {
			ui.Info("Serving statistics on %s%s", address, statistics.EndpointPathMetrics)
			err := server.Start(address)
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}, func(err error) {
			timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), statisticsShutdownTimeout)
			defer timeoutCancel()
			if shutdownErr := server.Shutdown(timeoutCtx); shutdownErr != nil {
				ui.Warning("Error stopping statistics server: %v", shutdownErr)
			} else {
				ui.Info("Statistics server stopped.")
			}
		})
	}

	return g.Run()
}

// safeUpdate runs one control cycle, turning a panic into a LogicError
// so the fail-safe shutdown still happens
func safeUpdate(system *FanControlSystem) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = util.NewLogicError("control cycle panicked: %v", r)
		}
	}()
	return system.Update()
}
