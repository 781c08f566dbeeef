package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/natefinch/atomic"
)

// ReadIntFromFile reads a single integer from the given file,
// surrounding whitespace is ignored
func ReadIntFromFile(path string) (value int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return -1, err
	}
	text := strings.TrimSpace(string(data))
	if len(text) <= 0 {
		return -1, fmt.Errorf("file is empty: %s", path)
	}
	value, err = strconv.Atoi(text)
	if err != nil {
		return -1, fmt.Errorf("file %s does not contain an integer: %w", path, err)
	}
	return value, nil
}

// WriteIntToFile write a single integer to a file path.
// The file is expected to exist already (like a sysfs attribute).
func WriteIntToFile(value int, path string) error {
	path = resolvePath(path)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	_, err = file.WriteString(strconv.Itoa(value))
	closeErr := file.Close()
	if err != nil {
		return err
	}
	return closeErr
}

// WriteIntToFileAtomic writes a single integer to a file path by writing
// a temporary file first and renaming it afterwards.
// This does not work for sysfs attributes.
func WriteIntToFileAtomic(value int, path string) error {
	path = resolvePath(path)
	return atomic.WriteFile(path, strings.NewReader(strconv.Itoa(value)))
}

// ExpandPath resolves a leading "~" to the home directory of the current user
func ExpandPath(path string) (string, error) {
	return homedir.Expand(path)
}

func resolvePath(path string) string {
	evaluatedPath, err := filepath.EvalSymlinks(path)
	if len(evaluatedPath) > 0 && err == nil {
		return evaluatedPath
	}
	return path
}
