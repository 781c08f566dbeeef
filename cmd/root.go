package cmd

import (
	"fmt"
	"os"

	"github.com/markusressel/hystfan/cmd/config"
	"github.com/markusressel/hystfan/cmd/curve"
	"github.com/markusressel/hystfan/cmd/fan"
	"github.com/markusressel/hystfan/cmd/global"
	"github.com/markusressel/hystfan/cmd/sensor"
	"github.com/markusressel/hystfan/internal"
	"github.com/markusressel/hystfan/internal/configuration"
	"github.com/markusressel/hystfan/internal/ui"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hystfan",
	Short: "A daemon to control chassis fans with hysteresis.",
	Long: `hystfan is a simple daemon that drives PWM fans based on
filtered temperature sensors, using hysteresis to avoid oscillation.`,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		printHeader()

		global.LoadConfig()

		internal.RunDaemon(internal.SystemOptions{
			DryRun:            global.DryRun,
			DryRunTemperature: global.DryRunTemperature,
			Verbose:           global.Verbose,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/hystfan.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.Flags().BoolVarP(&global.DryRun, "dry-run", "", false, "Use stub sensors and fans instead of real hardware")
	rootCmd.Flags().Float64VarP(&global.DryRunTemperature, "dry-run-temperature", "", 0, "Temperature reported by stub sensors in --dry-run mode")

	rootCmd.AddCommand(config.Command)
	rootCmd.AddCommand(fan.Command)
	rootCmd.AddCommand(curve.Command)
	rootCmd.AddCommand(sensor.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("hyst", pterm.NewStyle(pterm.FgLightBlue)),
		putils.LettersFromStringWithStyle("fan", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("hystfan")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		setupUi()
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
