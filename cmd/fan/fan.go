package fan

import (
	"fmt"

	"github.com/markusressel/hystfan/cmd/global"
	"github.com/markusressel/hystfan/internal/configuration"
	"github.com/markusressel/hystfan/internal/fans"
	"github.com/spf13/cobra"
)

var fanId string

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&fanId,
		"id", "i",
		"",
		"Fan ID as specified in the config",
	)
	_ = Command.MarkPersistentFlagRequired("id")
}

func getFan(id string) (fans.Fan, error) {
	global.LoadConfig()

	var availableFanIds []string
	for _, config := range configuration.CurrentConfig.Fans {
		availableFanIds = append(availableFanIds, config.ID)
		if config.ID == id {
			return fans.NewFan(config)
		}
	}

	return nil, fmt.Errorf("no fan with id found: %s, options: %s", id, availableFanIds)
}
