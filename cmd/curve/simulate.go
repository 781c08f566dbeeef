package curve

import (
	"fmt"
	"strconv"

	"github.com/markusressel/hystfan/cmd/global"
	"github.com/markusressel/hystfan/internal/configuration"
	"github.com/markusressel/hystfan/internal/curves"
	"github.com/markusressel/hystfan/internal/ui"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <temperature>...",
	Short: "Feed a sequence of temperatures into a curve and print the resulting speeds",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		temperatures, err := parseTemperatures(args)
		if err != nil {
			return err
		}

		global.LoadConfig()
		curveConf, err := getCurveConfig(curveId, configuration.CurrentConfig.Curves)
		if err != nil {
			return err
		}
		curve, err := curves.NewSpeedCurve(*curveConf)
		if err != nil {
			return err
		}

		for _, temperature := range temperatures {
			ui.Printfln("%6.2f° -> %d", temperature, curve.CalculateSpeed(temperature))
		}
		return nil
	},
}

func init() {
	Command.AddCommand(simulateCmd)
}

func parseTemperatures(args []string) ([]float64, error) {
	result := make([]float64, len(args))
	for i, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid temperature '%s': %w", arg, err)
		}
		result[i] = value
	}
	return result, nil
}
