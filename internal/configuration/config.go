package configuration

import (
	"os"
	"time"

	"github.com/markusressel/hystfan/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	DefaultControllerTickRate = 5 * time.Second
	DefaultStatisticsPort     = 9000
)

type Configuration struct {
	// ControllerTickRate is the interval between two control cycles,
	// independent of the polling rate of the sensors
	ControllerTickRate time.Duration `json:"controllerTickRate"`

	Sensors  []SensorConfig  `json:"sensors"`
	Fans     []FanConfig     `json:"fans"`
	Curves   []CurveConfig   `json:"curves"`
	Controls []ControlConfig `json:"controls"`

	Statistics StatisticsConfig `json:"statistics"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("hystfan")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/hystfan/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues(viper.GetViper())
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("controllerTickRate", DefaultControllerTickRate)

	v.SetDefault("sensors", []SensorConfig{})
	v.SetDefault("fans", []FanConfig{})
	v.SetDefault("curves", []CurveConfig{})
	v.SetDefault("controls", []ControlConfig{})

	v.SetDefault("statistics.enabled", false)
	v.SetDefault("statistics.port", DefaultStatisticsPort)
}

// DetectAndReadConfigFile reads the config file and returns its path
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		// config file is required, so we fail here
		ui.FatalWithoutStacktrace("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

// LoadConfig decodes the configuration that has been read by viper into CurrentConfig
func LoadConfig() {
	config, err := decodeConfig(viper.GetViper())
	if err != nil {
		ui.FatalWithoutStacktrace("unable to decode into struct, %v", err)
	}
	CurrentConfig = config
}

func decodeConfig(v *viper.Viper) (config Configuration, err error) {
	err = v.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		SpeedHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	return config, err
}
