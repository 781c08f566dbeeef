package fan

import (
	"github.com/markusressel/hystfan/internal/configuration"
	"github.com/markusressel/hystfan/internal/fans"
	"github.com/markusressel/hystfan/internal/ui"
	"github.com/markusressel/hystfan/internal/util"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <speed>",
	Short: "Set the speed of a fan to the given value ([0..255] or a percentage like 50%)",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		speed, err := configuration.ParseSpeed(args[0])
		if err != nil {
			return err
		}
		if speed < fans.MinPwmValue || speed > fans.MaxPwmValue {
			return util.NewConfigError("speed %d is out of range [%d..%d]", speed, fans.MinPwmValue, fans.MaxPwmValue)
		}

		fan, err := getFan(fanId)
		if err != nil {
			return err
		}

		err = fan.SetSpeed(int(speed))
		if err != nil {
			return err
		}
		ui.Success("Fan '%s' set to %d", fan.GetId(), speed)
		return nil
	},
}

func init() {
	Command.AddCommand(setCmd)
}
