package hwmon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, path string, content string) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	assert.NoError(t, err)
	err = os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
}

func createSysfs(t *testing.T) string {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "hwmon0", "name"), "k10temp\n")
	writeFile(t, filepath.Join(root, "hwmon0", "temp1_input"), "45000\n")
	writeFile(t, filepath.Join(root, "hwmon0", "temp1_label"), "Tctl\n")
	writeFile(t, filepath.Join(root, "hwmon0", "temp10_input"), "38500\n")

	writeFile(t, filepath.Join(root, "hwmon1", "name"), "nct6798\n")
	writeFile(t, filepath.Join(root, "hwmon1", "pwm2"), "128\n")
	writeFile(t, filepath.Join(root, "hwmon1", "pwm1"), "255\n")
	writeFile(t, filepath.Join(root, "hwmon1", "pwm1_enable"), "1\n")
	writeFile(t, filepath.Join(root, "hwmon1", "fan1_label"), "CPU_FAN\n")

	writeFile(t, filepath.Join(root, "hwmon2", "name"), "acpitz\n")

	return root
}

func TestGetChips(t *testing.T) {
	// GIVEN
	root := createSysfs(t)

	// WHEN
	chips, err := GetChips(root)

	// THEN
	assert.NoError(t, err)
	assert.Len(t, chips, 2)

	cpu := chips[0]
	assert.Equal(t, "k10temp", cpu.Name)
	assert.Empty(t, cpu.Fans)
	assert.Len(t, cpu.Sensors, 2)
	assert.Equal(t, 1, cpu.Sensors[0].Index)
	assert.Equal(t, "Tctl", cpu.Sensors[0].Label)
	assert.Equal(t, 10, cpu.Sensors[1].Index)
	assert.Equal(t, "temp10", cpu.Sensors[1].Label)

	board := chips[1]
	assert.Equal(t, "nct6798", board.Name)
	assert.Empty(t, board.Sensors)
	assert.Len(t, board.Fans, 2)
	assert.Equal(t, "CPU_FAN", board.Fans[0].Label)
	assert.Equal(t, filepath.Join(root, "hwmon1", "pwm1"), board.Fans[0].Path)
	assert.Equal(t, 2, board.Fans[1].Index)
}

func TestGetChips_Values(t *testing.T) {
	// GIVEN
	root := createSysfs(t)
	chips, err := GetChips(root)
	assert.NoError(t, err)

	// WHEN
	temperature, tempErr := chips[0].Sensors[0].ReadTemperature()
	pwm, pwmErr := chips[1].Fans[1].ReadPwm()

	// THEN
	assert.NoError(t, tempErr)
	assert.Equal(t, 45.0, temperature)
	assert.NoError(t, pwmErr)
	assert.Equal(t, 128, pwm)
}

func TestGetChips_EmptyRoot(t *testing.T) {
	// WHEN
	chips, err := GetChips(t.TempDir())

	// THEN
	assert.NoError(t, err)
	assert.Empty(t, chips)
}

func TestGetChips_MissingName(t *testing.T) {
	// GIVEN
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "hwmon5", "temp1_input"), "1000")

	// WHEN
	chips, err := GetChips(root)

	// THEN
	assert.NoError(t, err)
	assert.Len(t, chips, 1)
	assert.Equal(t, "hwmon5", chips[0].Name)
}
