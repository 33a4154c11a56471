/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package modlog contains the module-aware logger implementations behind pkg/log.
package modlog

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	glog "github.com/google/logger"

	"github.com/trustbloc/edge-sss/pkg/internal/logging/metadata"
)

// callerDepth is the stack depth from a DefLog method to the code that called pkg/log.
const callerDepth = 4

// DefLog is the default logger. It applies module levels and writes through google/logger.
type DefLog struct {
	logger *glog.Logger
	module string
}

// NewDefLog returns a default logger for module that writes to out.
func NewDefLog(module string, out io.Writer) *DefLog {
	return &DefLog{
		logger: glog.Init(module, false, false, out),
		module: module,
	}
}

// Fatalf logs at CRITICAL and exits the process.
func (l *DefLog) Fatalf(format string, args ...interface{}) {
	l.logger.Fatalf("%s", l.format(metadata.CRITICAL, format, args))
}

// Panicf logs at CRITICAL and panics with the message.
func (l *DefLog) Panicf(format string, args ...interface{}) {
	msg := l.format(metadata.CRITICAL, format, args)
	l.logger.Errorf("%s", msg)

	panic(msg)
}

// Debugf logs at DEBUG.
func (l *DefLog) Debugf(format string, args ...interface{}) {
	if metadata.IsEnabledFor(l.module, metadata.DEBUG) {
		l.logger.Infof("%s", l.format(metadata.DEBUG, format, args))
	}
}

// Infof logs at INFO.
func (l *DefLog) Infof(format string, args ...interface{}) {
	if metadata.IsEnabledFor(l.module, metadata.INFO) {
		l.logger.Infof("%s", l.format(metadata.INFO, format, args))
	}
}

// Warnf logs at WARNING.
func (l *DefLog) Warnf(format string, args ...interface{}) {
	if metadata.IsEnabledFor(l.module, metadata.WARNING) {
		l.logger.Warningf("%s", l.format(metadata.WARNING, format, args))
	}
}

// Errorf logs at ERROR.
func (l *DefLog) Errorf(format string, args ...interface{}) {
	if metadata.IsEnabledFor(l.module, metadata.ERROR) {
		l.logger.Errorf("%s", l.format(metadata.ERROR, format, args))
	}
}

func (l *DefLog) format(level metadata.Level, format string, args []interface{}) string {
	msg := fmt.Sprintf(format, args...)

	if metadata.IsCallerInfoEnabled(l.module, level) {
		return fmt.Sprintf("[%s] %s %s %s", l.module, metadata.ParseString(level), callerInfo(callerDepth), msg)
	}

	return fmt.Sprintf("[%s] %s %s", l.module, metadata.ParseString(level), msg)
}

func callerInfo(depth int) string {
	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "[unknown]"
	}

	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = filepath.Base(fn.Name())
	}

	return fmt.Sprintf("[%s:%d %s]", filepath.Base(file), line, name)
}
