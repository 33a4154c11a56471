/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"sync"

	"github.com/trustbloc/edge-sss/pkg/internal/logging/metadata"
)

// Log is a module logger.
// It encapsulates the default or a custom logger and applies the module's level.
type Log struct {
	instance Logger
	module   string
	once     sync.Once
}

// New creates a Logger for the given module.
// The underlying logger is resolved on first use, so Initialize may still be called
// after New as long as nothing has been logged yet.
func New(module string) *Log {
	return &Log{module: module}
}

// Fatalf logs at CRITICAL and may cause system shutdown depending on the implementation.
func (l *Log) Fatalf(msg string, args ...interface{}) {
	l.logger().Fatalf(msg, args...)
}

// Panicf logs at CRITICAL and may panic depending on the implementation.
func (l *Log) Panicf(msg string, args ...interface{}) {
	l.logger().Panicf(msg, args...)
}

// Debugf logs at DEBUG.
func (l *Log) Debugf(msg string, args ...interface{}) {
	l.logger().Debugf(msg, args...)
}

// Infof logs at INFO.
func (l *Log) Infof(msg string, args ...interface{}) {
	l.logger().Infof(msg, args...)
}

// Warnf logs at WARNING.
func (l *Log) Warnf(msg string, args ...interface{}) {
	l.logger().Warnf(msg, args...)
}

// Errorf logs at ERROR.
func (l *Log) Errorf(msg string, args ...interface{}) {
	l.logger().Errorf(msg, args...)
}

func (l *Log) logger() Logger {
	l.once.Do(func() {
		l.instance = loggerProvider().GetLogger(l.module)
	})

	return l.instance
}

// SetLevel sets the logging level of module. If not set, the default level is INFO.
func SetLevel(module string, level Level) {
	metadata.SetLevel(module, metadata.Level(level))
}

// GetLevel returns the logging level of module.
func GetLevel(module string) Level {
	return Level(metadata.GetLevel(module))
}

// GetAllLevels returns every module with an explicitly set level.
func GetAllLevels() map[string]Level {
	metadataLevels := metadata.GetAllLevels()

	levels := make(map[string]Level, len(metadataLevels))
	for module, logLevel := range metadataLevels {
		levels[module] = Level(logLevel)
	}

	return levels
}

// IsEnabledFor reports whether level is enabled for module.
func IsEnabledFor(module string, level Level) bool {
	return metadata.IsEnabledFor(module, metadata.Level(level))
}

// ParseLevel returns the log level from a string representation.
func ParseLevel(level string) (Level, error) {
	l, err := metadata.ParseLevel(level)

	return Level(l), err
}

// ParseString returns string representation of given log level.
func ParseString(level Level) string {
	return metadata.ParseString(metadata.Level(level))
}

// ShowCallerInfo shows caller info in log lines of module at level.
// Custom logging providers may ignore it.
func ShowCallerInfo(module string, level Level) {
	metadata.ShowCallerInfo(module, metadata.Level(level))
}

// HideCallerInfo hides caller info in log lines of module at level.
func HideCallerInfo(module string, level Level) {
	metadata.HideCallerInfo(module, metadata.Level(level))
}

// IsCallerInfoEnabled reports whether caller info is shown for module at level.
func IsCallerInfoEnabled(module string, level Level) bool {
	return metadata.IsCallerInfoEnabled(module, metadata.Level(level))
}
