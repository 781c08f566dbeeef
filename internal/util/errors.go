package util

import (
	"fmt"
)

// ConfigError signals malformed or inconsistent parameters.
// It is never recovered from.
type ConfigError struct {
	Message string
}

func NewConfigError(format string, a ...interface{}) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, a...)}
}

func (e *ConfigError) Error() string {
	return e.Message
}

// IoError signals an unreadable sensor or an unwritable fan
type IoError struct {
	Op   string
	Path string
	Err  error
}

func NewIoError(op string, path string, err error) *IoError {
	return &IoError{Op: op, Path: path, Err: err}
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// LogicError signals a violated internal invariant, i.e. a programming defect
type LogicError struct {
	Message string
}

func NewLogicError(format string, a ...interface{}) *LogicError {
	return &LogicError{Message: fmt.Sprintf(format, a...)}
}

func (e *LogicError) Error() string {
	return "internal error: " + e.Message
}
