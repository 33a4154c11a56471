/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logspec is the REST controller for reading and changing log levels at runtime.
package logspec

import (
	"github.com/trustbloc/edge-sss/pkg/restapi/logspec/operation"
)

// Controller contains handlers for controller.
type Controller struct {
	handlers []operation.Handler
}

// New returns new controller instance.
func New() *Controller {
	return &Controller{handlers: operation.GetRESTHandlers()}
}

// GetOperations returns all controller endpoints.
func (c *Controller) GetOperations() []operation.Handler {
	return c.handlers
}
