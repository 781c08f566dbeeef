package hwmon

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/markusressel/hystfan/internal/util"
)

const DefaultRoot = "/sys/class/hwmon"

var (
	tempInputPattern = regexp.MustCompile(`^temp(\d+)_input$`)
	pwmOutputPattern = regexp.MustCompile(`^pwm(\d+)$`)
)

// Chip is a single hwmon device directory, f.ex. /sys/class/hwmon/hwmon2
type Chip struct {
	Name string
	Path string

	Sensors []*TempInput
	Fans    []*PwmOutput
}

// TempInput is a temperature file usable as a file sensor
type TempInput struct {
	Index int
	Label string
	Path  string
}

// PwmOutput is a pwm file usable as a file fan
type PwmOutput struct {
	Index int
	Label string
	Path  string
}

// GetChips lists all hwmon devices below root that expose at least one
// temperature input or pwm output, sorted by path
func GetChips(root string) ([]*Chip, error) {
	dirs, err := filepath.Glob(filepath.Join(root, "hwmon*"))
	if err != nil {
		return nil, err
	}
	sort.Strings(dirs)

	var result []*Chip
	for _, dir := range dirs {
		chip, err := readChip(dir)
		if err != nil {
			return nil, err
		}
		if len(chip.Sensors) <= 0 && len(chip.Fans) <= 0 {
			continue
		}
		result = append(result, chip)
	}
	return result, nil
}

// ReadTemperature returns the current value of the input in degrees
func (input *TempInput) ReadTemperature() (float64, error) {
	value, err := util.ReadIntFromFile(input.Path)
	if err != nil {
		return 0, err
	}
	return float64(value) / 1000, nil
}

// ReadPwm returns the current pwm value of the output
func (output *PwmOutput) ReadPwm() (int, error) {
	return util.ReadIntFromFile(output.Path)
}

func readChip(dir string) (*Chip, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	chip := &Chip{
		Name: readName(dir),
		Path: dir,
	}

	for _, entry := range entries {
		name := entry.Name()
		if match := tempInputPattern.FindStringSubmatch(name); match != nil {
			index, _ := strconv.Atoi(match[1])
			chip.Sensors = append(chip.Sensors, &TempInput{
				Index: index,
				Label: readLabel(dir, "temp"+match[1]),
				Path:  filepath.Join(dir, name),
			})
		} else if match := pwmOutputPattern.FindStringSubmatch(name); match != nil {
			index, _ := strconv.Atoi(match[1])
			chip.Fans = append(chip.Fans, &PwmOutput{
				Index: index,
				Label: readLabel(dir, "fan"+match[1]),
				Path:  filepath.Join(dir, name),
			})
		}
	}

	sort.Slice(chip.Sensors, func(i, j int) bool { return chip.Sensors[i].Index < chip.Sensors[j].Index })
	sort.Slice(chip.Fans, func(i, j int) bool { return chip.Fans[i].Index < chip.Fans[j].Index })

	return chip, nil
}

func readName(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "name"))
	if err != nil {
		return filepath.Base(dir)
	}
	return strings.TrimSpace(string(data))
}

// readLabel returns the content of <prefix>_label, or the prefix itself if there is none
func readLabel(dir string, prefix string) string {
	data, err := os.ReadFile(filepath.Join(dir, prefix+"_label"))
	if err != nil {
		return prefix
	}
	label := strings.TrimSpace(string(data))
	if len(label) <= 0 {
		return prefix
	}
	return label
}
