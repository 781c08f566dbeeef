package global

import (
	"github.com/markusressel/hystfan/internal/configuration"
	"github.com/markusressel/hystfan/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/tomlazar/table"
)

var (
	CfgFile string
	Verbose bool
	NoColor bool
	NoStyle bool

	DryRun            bool
	DryRunTemperature float64
)

// LoadConfig reads, decodes and validates the configuration file,
// exiting the process if any of this fails
func LoadConfig() {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	if err := configuration.Validate(); err != nil {
		ui.ErrorAndNotify("Config Validation Error", "%v", err)
		ui.FatalWithoutStacktrace("Validation failed, exiting.")
	}
}

// TableConfig is the style used for all tables printed to the terminal
func TableConfig() *table.Config {
	return &table.Config{
		ShowIndex:       false,
		Color:           !NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	}
}
