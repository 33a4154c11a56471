/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import (
	"errors"
	"strings"
)

// ErrInvalidLevel is returned when a level name is not recognized.
var ErrInvalidLevel = errors.New("logger: invalid log level")

// Levels are the log level names, indexed by Level.
var Levels = []string{ // nolint:gochecknoglobals // defines log levels
	"CRITICAL",
	"ERROR",
	"WARNING",
	"INFO",
	"DEBUG",
}

// ParseLevel returns the log level from a string representation. "warn" is accepted for WARNING.
func ParseLevel(level string) (Level, error) {
	if strings.EqualFold(level, "warn") {
		return WARNING, nil
	}

	for i, name := range Levels {
		if strings.EqualFold(name, level) {
			return Level(i), nil
		}
	}

	return ERROR, ErrInvalidLevel
}

// ParseString returns string representation of given log level.
func ParseString(level Level) string {
	if level < CRITICAL || level > DEBUG {
		return "UNKNOWN"
	}

	return Levels[level]
}
