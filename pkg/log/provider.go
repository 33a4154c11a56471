/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package log provides module based, leveled logging.
//
// Each package creates its logger once with New("edge-sss/<module>"). Levels are set per
// module with SetLevel or SetSpec. Output goes through google/logger unless a custom
// LoggerProvider is installed with Initialize before the first line is logged.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/trustbloc/edge-sss/pkg/internal/logging/metadata"
	"github.com/trustbloc/edge-sss/pkg/internal/logging/modlog"
)

// Level is a log level.
type Level metadata.Level

// Log levels, most severe first.
const (
	CRITICAL = Level(metadata.CRITICAL)
	ERROR    = Level(metadata.ERROR)
	WARNING  = Level(metadata.WARNING)
	INFO     = Level(metadata.INFO)
	DEBUG    = Level(metadata.DEBUG)
)

// Logger is the interface every logger implementation satisfies.
type Logger interface {
	// Fatalf logs and then terminates the process.
	Fatalf(msg string, args ...interface{})
	// Panicf logs and then panics.
	Panicf(msg string, args ...interface{})
	Debugf(msg string, args ...interface{})
	Infof(msg string, args ...interface{})
	Warnf(msg string, args ...interface{})
	Errorf(msg string, args ...interface{})
}

// LoggerProvider creates the logger for a module.
type LoggerProvider interface {
	GetLogger(module string) Logger
}

// nolint:gochecknoglobals // process-wide provider
var (
	loggerProviderInstance LoggerProvider
	loggerProviderOnce     sync.Once
	defaultOutput          io.Writer = os.Stdout
)

// Initialize installs a custom logging provider. Only the first call, made before any
// line is logged, takes effect. Module levels still apply to custom loggers.
func Initialize(l LoggerProvider) {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = &modlogProvider{custom: l}
		logger := loggerProviderInstance.GetLogger("edge-sss/log")
		logger.Debugf("logger provider initialized")
	})
}

func loggerProvider() LoggerProvider {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = &modlogProvider{}
	})

	return loggerProviderInstance
}

type modlogProvider struct {
	custom LoggerProvider
}

func (p *modlogProvider) GetLogger(module string) Logger {
	if p.custom != nil {
		return modlog.NewModLog(p.custom.GetLogger(module), module)
	}

	return modlog.NewDefLog(module, defaultOutput)
}
