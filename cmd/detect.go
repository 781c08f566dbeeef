package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/markusressel/hystfan/cmd/global"
	"github.com/markusressel/hystfan/internal/hwmon"
	"github.com/markusressel/hystfan/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var hwmonRoot string

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect devices",
	Long:  `Detects all hwmon temperature inputs and pwm outputs and prints them as a list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		chips, err := hwmon.GetChips(hwmonRoot)
		if err != nil {
			return err
		}
		if len(chips) <= 0 {
			ui.Warning("No hwmon devices found in %s", hwmonRoot)
			return nil
		}

		for _, chip := range chips {
			ui.Printfln("> %s (%s)", chip.Name, chip.Path)

			var fanRows [][]string
			for _, fan := range chip.Fans {
				pwmText := "N/A"
				if pwm, err := fan.ReadPwm(); err == nil {
					pwmText = strconv.Itoa(pwm)
				}
				fanRows = append(fanRows, []string{
					"", strconv.Itoa(fan.Index), fan.Label, pwmText, fan.Path,
				})
			}
			fanTable := table.Table{
				Headers: []string{"Fans   ", "Index", "Label", "PWM", "Path"},
				Rows:    fanRows,
			}

			var sensorRows [][]string
			for _, sensor := range chip.Sensors {
				valueText := "N/A"
				if value, err := sensor.ReadTemperature(); err == nil {
					valueText = fmt.Sprintf("%.1f", value)
				}
				sensorRows = append(sensorRows, []string{
					"", strconv.Itoa(sensor.Index), sensor.Label, valueText, sensor.Path,
				})
			}
			sensorTable := table.Table{
				Headers: []string{"Sensors", "Index", "Label", "Value", "Path"},
				Rows:    sensorRows,
			}

			tables := []table.Table{fanTable, sensorTable}
			for idx, tab := range tables {
				if tab.Rows == nil {
					continue
				}
				var buf bytes.Buffer
				if err := tab.WriteTable(&buf, global.TableConfig()); err != nil {
					return err
				}
				tableString := buf.String()
				if idx < (len(tables) - 1) {
					ui.Printf(tableString)
				} else {
					ui.Printfln(tableString)
				}
			}
		}
		return nil
	},
}

func init() {
	detectCmd.Flags().StringVarP(&hwmonRoot, "root", "", hwmon.DefaultRoot, "hwmon sysfs directory")
	rootCmd.AddCommand(detectCmd)
}
