/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteResponse(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteResponse(rr, map[string]int{"threshold": 3})

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.JSONEq(t, `{"threshold":3}`, rr.Body.String())
}

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteErrorResponse(rr, http.StatusNotFound, "share set not found")

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "share set not found", resp.Message)
}

func TestWriteResponse_Unencodable(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteResponse(rr, make(chan int))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Empty(t, rr.Body.String())
}
