/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocklogger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/trustbloc/edge-sss/pkg/log"
)

// Provider hands out the same MockLogger for every module.
type Provider struct {
	MockLogger *MockLogger
}

// GetLogger returns the mock logger.
func (p *Provider) GetLogger(string) log.Logger {
	return p.MockLogger
}

// MockLogger records everything logged through it.
type MockLogger struct {
	mutex           sync.Mutex
	AllLogContents  string
	FatalLogContent string
	PanicLogContent string
}

// Fatalf records msg. It does not exit.
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	s := m.record("FATAL", msg, args...)

	m.mutex.Lock()
	m.FatalLogContent = s
	m.mutex.Unlock()
}

// Panicf records msg. It does not panic.
func (m *MockLogger) Panicf(msg string, args ...interface{}) {
	s := m.record("PANIC", msg, args...)

	m.mutex.Lock()
	m.PanicLogContent = s
	m.mutex.Unlock()
}

// Debugf records msg.
func (m *MockLogger) Debugf(msg string, args ...interface{}) {
	m.record("DEBUG", msg, args...)
}

// Infof records msg.
func (m *MockLogger) Infof(msg string, args ...interface{}) {
	m.record("INFO", msg, args...)
}

// Warnf records msg.
func (m *MockLogger) Warnf(msg string, args ...interface{}) {
	m.record("WARN", msg, args...)
}

// Errorf records msg.
func (m *MockLogger) Errorf(msg string, args ...interface{}) {
	m.record("ERROR", msg, args...)
}

// Contents returns everything logged so far.
func (m *MockLogger) Contents() string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.AllLogContents
}

// Reset clears the recorded output.
func (m *MockLogger) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.AllLogContents = ""
	m.FatalLogContent = ""
	m.PanicLogContent = ""
}

func (m *MockLogger) record(level, msg string, args ...interface{}) string {
	s := level + " " + fmt.Sprintf(msg, args...)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	var b strings.Builder

	b.WriteString(m.AllLogContents)
	b.WriteString(s)
	b.WriteString("\n")

	m.AllLogContents = b.String()

	return s
}
