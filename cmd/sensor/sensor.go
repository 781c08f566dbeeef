package sensor

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/markusressel/hystfan/cmd/global"
	"github.com/markusressel/hystfan/internal/configuration"
	"github.com/markusressel/hystfan/internal/filter"
	"github.com/markusressel/hystfan/internal/sensors"
	"github.com/markusressel/hystfan/internal/ui"
	"github.com/markusressel/hystfan/internal/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var (
	sensorId    string
	sampleCount int
)

var Command = &cobra.Command{
	Use:              "sensor",
	Short:            "Print the current value of a sensor",
	Long:             `Reads the raw value of a sensor. With -n, multiple samples are taken at the configured polling rate and summarized.`,
	TraverseChildren: true,
	Args:             cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sampleCount <= 1 {
			pterm.DisableOutput()
		}

		config, err := getSensorConfig(sensorId)
		if err != nil {
			return err
		}
		source, err := sensors.NewSource(*config)
		if err != nil {
			return err
		}

		if sampleCount <= 1 {
			value, err := source.ReadRaw()
			if err != nil {
				return err
			}
			fmt.Printf("%.2f", value)
			return nil
		}

		return sampleSensor(source, *config, sampleCount)
	},
}

func init() {
	Command.PersistentFlags().StringVarP(
		&sensorId,
		"id", "i",
		"",
		"Sensor ID as specified in the config",
	)
	_ = Command.MarkPersistentFlagRequired("id")
	Command.Flags().IntVarP(&sampleCount, "samples", "n", 1, "Number of samples to take")
}

func getSensorConfig(id string) (*configuration.SensorConfig, error) {
	global.LoadConfig()

	var availableSensorIds []string
	for _, config := range configuration.CurrentConfig.Sensors {
		availableSensorIds = append(availableSensorIds, config.ID)
		if config.ID == id {
			return &config, nil
		}
	}

	return nil, fmt.Errorf("no sensor with id found: %s, options: %s", id, availableSensorIds)
}

// sampleSensor reads count samples, printing the raw and filtered value of each
// and a summary of the raw values at the end
func sampleSensor(source sensors.TemperatureSource, config configuration.SensorConfig, count int) error {
	window := util.CreateRollingWindow(count)

	first, err := source.ReadRaw()
	if err != nil {
		return err
	}
	averaging, err := filter.NewAveragingFilter(config.FilterOrder, first)
	if err != nil {
		return err
	}
	window.Append(first)
	ui.Printfln("%3d: raw %6.2f°  filtered %6.2f°", 1, first, averaging.Value())

	for i := 2; i <= count; i++ {
		time.Sleep(config.PollingRate)
		value, err := source.ReadRaw()
		if err != nil {
			return err
		}
		window.Append(value)
		filtered := averaging.Update(value)
		ui.Printfln("%3d: raw %6.2f°  filtered %6.2f°", i, value, filtered)
	}

	tab := table.Table{
		Headers: []string{"Sensor", "Samples", "Avg", "Min", "Max", "Filtered"},
		Rows: [][]string{
			{
				source.GetId(),
				strconv.Itoa(count),
				formatTemperature(util.GetWindowAvg(window)),
				formatTemperature(util.GetWindowMin(window)),
				formatTemperature(util.GetWindowMax(window)),
				formatTemperature(averaging.Value()),
			},
		},
	}
	var buf bytes.Buffer
	if err := tab.WriteTable(&buf, global.TableConfig()); err != nil {
		return err
	}
	ui.Printfln(buf.String())
	return nil
}

func formatTemperature(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
