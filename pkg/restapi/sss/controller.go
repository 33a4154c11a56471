/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package sss is the REST controller for splitting, combining and storing secrets.
package sss

import (
	"fmt"

	"github.com/trustbloc/edge-sss/pkg/restapi/sss/operation"
	"github.com/trustbloc/edge-sss/pkg/sharestore"
	"github.com/trustbloc/edge-sss/pkg/storage"
)

// Controller contains handlers for controller.
type Controller struct {
	handlers []operation.Handler
}

// New returns new controller instance keeping share sets in provider.
func New(provider storage.Provider, opts ...operation.Option) (*Controller, error) {
	store, err := sharestore.New(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create share store: %w", err)
	}

	return &Controller{handlers: operation.New(store, opts...).GetRESTHandlers()}, nil
}

// GetOperations returns all controller endpoints.
func (c *Controller) GetOperations() []operation.Handler {
	return c.handlers
}
