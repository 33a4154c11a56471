/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package http writes JSON responses for the REST controllers.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/trustbloc/edge-sss/pkg/log"
)

var logger = log.New("edge-sss/restapi")

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Message string `json:"errMessage,omitempty"`
}

// WriteResponse writes v as a 200 JSON response.
func WriteResponse(rw http.ResponseWriter, v interface{}) {
	WriteResponseWithStatus(rw, http.StatusOK, v)
}

// WriteResponseWithStatus writes v as a JSON response with the given status.
func WriteResponseWithStatus(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)

	if err := json.NewEncoder(rw).Encode(v); err != nil {
		logger.Errorf("Unable to send response: %s", err)
	}
}

// WriteErrorResponse writes msg as a JSON error response with the given status.
func WriteErrorResponse(rw http.ResponseWriter, status int, msg string) {
	logger.Debugf("responding %d: %s", status, msg)

	WriteResponseWithStatus(rw, status, ErrorResponse{Message: msg})
}
