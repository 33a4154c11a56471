/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package support holds helpers shared by the REST controllers.
package support

import "net/http"

// HTTPHandler binds a handler func to a path and method.
type HTTPHandler struct {
	path        string
	method      string
	handlerFunc http.HandlerFunc
}

// NewHTTPHandler returns an instance of HTTPHandler.
func NewHTTPHandler(path, method string, handlerFunc http.HandlerFunc) *HTTPHandler {
	return &HTTPHandler{path: path, method: method, handlerFunc: handlerFunc}
}

// Path returns the route pattern, which may contain chi URL parameters such as {id}.
func (h *HTTPHandler) Path() string {
	return h.path
}

// Method returns the HTTP method.
func (h *HTTPHandler) Method() string {
	return h.method
}

// Handle returns the handler func.
func (h *HTTPHandler) Handle() http.HandlerFunc {
	return h.handlerFunc
}
