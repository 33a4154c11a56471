/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modlog

import "github.com/trustbloc/edge-sss/pkg/internal/logging/metadata"

// Logger is the method set shared with pkg/log.Logger.
type Logger interface {
	Fatalf(msg string, args ...interface{})
	Panicf(msg string, args ...interface{})
	Debugf(msg string, args ...interface{})
	Infof(msg string, args ...interface{})
	Warnf(msg string, args ...interface{})
	Errorf(msg string, args ...interface{})
}

// ModLog applies module levels to a custom logger that knows nothing about them.
// Fatalf and Panicf are always forwarded.
type ModLog struct {
	logger Logger
	module string
}

// NewModLog wraps logger for module.
func NewModLog(logger Logger, module string) *ModLog {
	return &ModLog{logger: logger, module: module}
}

// Fatalf forwards to the wrapped logger.
func (m *ModLog) Fatalf(msg string, args ...interface{}) {
	m.logger.Fatalf(msg, args...)
}

// Panicf forwards to the wrapped logger.
func (m *ModLog) Panicf(msg string, args ...interface{}) {
	m.logger.Panicf(msg, args...)
}

// Debugf forwards when DEBUG is enabled for the module.
func (m *ModLog) Debugf(msg string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.DEBUG) {
		m.logger.Debugf(msg, args...)
	}
}

// Infof forwards when INFO is enabled for the module.
func (m *ModLog) Infof(msg string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.INFO) {
		m.logger.Infof(msg, args...)
	}
}

// Warnf forwards when WARNING is enabled for the module.
func (m *ModLog) Warnf(msg string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.WARNING) {
		m.logger.Warnf(msg, args...)
	}
}

// Errorf forwards when ERROR is enabled for the module.
func (m *ModLog) Errorf(msg string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.ERROR) {
		m.logger.Errorf(msg, args...)
	}
}
