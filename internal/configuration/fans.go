package configuration

type FanConfig struct {
	ID   string         `json:"id"`
	File *FileFanConfig `json:"file,omitempty"`
}

type FileFanConfig struct {
	// Path to the pwm output, f.ex. /sys/class/hwmon/hwmon3/pwm1
	Path string `json:"path"`
	// Atomic writes the value to a temporary file and renames it afterwards.
	// Only works for regular files, not for sysfs attributes.
	Atomic bool `json:"atomic"`
}
