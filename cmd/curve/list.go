package curve

import (
	"bytes"
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/hystfan/cmd/global"
	"github.com/markusressel/hystfan/internal/configuration"
	"github.com/markusressel/hystfan/internal/curves"
	"github.com/markusressel/hystfan/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

const sweepStep = 0.5

var curveCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the configured speed curve(s) to console",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		global.LoadConfig()

		curveConfigs := configuration.CurrentConfig.Curves
		if len(curveId) > 0 {
			curveConf, err := getCurveConfig(curveId, curveConfigs)
			if err != nil {
				return err
			}
			curveConfigs = []configuration.CurveConfig{*curveConf}
		}

		for idx, curveConf := range curveConfigs {
			if idx > 0 {
				ui.Printfln("")
				ui.Printfln("")
			}

			curve, err := curves.NewSpeedCurve(curveConf)
			if err != nil {
				return err
			}

			hysteresis, ok := curve.(*curves.HysteresisSpeedCurve)
			if !ok {
				continue
			}

			tab := table.Table{
				Headers: []string{"ID", "Type", "Speeds", "Transitions", "Gap"},
				Rows: [][]string{
					{
						curve.GetId(),
						"Hysteresis",
						fmt.Sprintf("%v", hysteresis.Speeds()),
						fmt.Sprintf("%v", hysteresis.Transitions()),
						fmt.Sprintf("%v", curveConf.Hysteresis.Gap),
					},
				},
			}
			var buf bytes.Buffer
			if tableErr := tab.WriteTable(&buf, global.TableConfig()); tableErr != nil {
				return tableErr
			}
			ui.Printfln(buf.String())

			start, stop := sweepRange(curveConf.Hysteresis.Transitions, curveConf.Hysteresis.Gap)
			rising, falling := sweep(hysteresis, start, stop)
			if len(rising) <= 1 {
				continue
			}

			caption := fmt.Sprintf("speed, %.1f° .. %.1f° (rising / falling)", start, stop)
			graph := asciigraph.PlotMany(
				[][]float64{rising, falling},
				asciigraph.Height(15),
				asciigraph.Width(100),
				asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
				asciigraph.Caption(caption),
			)
			ui.Printfln(graph)
		}

		return nil
	},
}

func init() {
	Command.AddCommand(curveCmd)
}

// sweepRange returns a temperature range that covers all transitions including their gap
func sweepRange(transitions []float64, gap float64) (start float64, stop float64) {
	if len(transitions) <= 0 {
		return 0, 0
	}
	margin := gap + 5
	return transitions[0] - margin, transitions[len(transitions)-1] + margin
}

// sweep feeds the curve with a rising and afterwards a falling temperature ramp
// between start and stop, returning the speeds per step in ascending temperature order
func sweep(curve curves.SpeedCurve, start float64, stop float64) (rising []float64, falling []float64) {
	steps := int((stop-start)/sweepStep) + 1
	if steps <= 0 {
		return nil, nil
	}
	rising = make([]float64, steps)
	falling = make([]float64, steps)
	for i := 0; i < steps; i++ {
		rising[i] = float64(curve.CalculateSpeed(start + float64(i)*sweepStep))
	}
	for i := steps - 1; i >= 0; i-- {
		falling[i] = float64(curve.CalculateSpeed(start + float64(i)*sweepStep))
	}
	return rising, falling
}
