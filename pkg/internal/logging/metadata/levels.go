/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metadata keeps the per-module log levels and caller-info switches shared by all loggers.
package metadata

import "sync"

// Level is a log level. Lower values are more severe.
type Level int

// Log levels.
const (
	CRITICAL Level = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

// DefaultModule holds the level used by modules without an explicit level.
const DefaultModule = ""

// nolint:gochecknoglobals // process-wide logging state
var (
	mux        sync.RWMutex
	levels     = map[string]Level{}
	callerInfo = map[callerInfoKey]bool{}
)

type callerInfoKey struct {
	module string
	level  Level
}

// SetLevel sets the level of module. The empty module name sets the default level.
func SetLevel(module string, level Level) {
	mux.Lock()
	defer mux.Unlock()

	levels[module] = level
}

// GetLevel returns the level of module, falling back to the default level and then to INFO.
func GetLevel(module string) Level {
	mux.RLock()
	defer mux.RUnlock()

	if l, ok := levels[module]; ok {
		return l
	}

	if l, ok := levels[DefaultModule]; ok {
		return l
	}

	return INFO
}

// GetAllLevels returns a copy of every explicitly set module level.
func GetAllLevels() map[string]Level {
	mux.RLock()
	defer mux.RUnlock()

	out := make(map[string]Level, len(levels))
	for m, l := range levels {
		out[m] = l
	}

	return out
}

// ResetLevels forgets every module level, including the default.
func ResetLevels() {
	mux.Lock()
	defer mux.Unlock()

	levels = map[string]Level{}
}

// IsEnabledFor reports whether messages at level are logged for module.
func IsEnabledFor(module string, level Level) bool {
	return level <= GetLevel(module)
}

// ShowCallerInfo enables caller info for module at level.
func ShowCallerInfo(module string, level Level) {
	setCallerInfo(module, level, true)
}

// HideCallerInfo disables caller info for module at level.
func HideCallerInfo(module string, level Level) {
	setCallerInfo(module, level, false)
}

// IsCallerInfoEnabled reports whether caller info is shown for module at level. It is on by default.
func IsCallerInfoEnabled(module string, level Level) bool {
	mux.RLock()
	defer mux.RUnlock()

	enabled, ok := callerInfo[callerInfoKey{module: module, level: level}]
	if !ok {
		return true
	}

	return enabled
}

func setCallerInfo(module string, level Level, enabled bool) {
	mux.Lock()
	defer mux.Unlock()

	callerInfo[callerInfoKey{module: module, level: level}] = enabled
}
