/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logspec_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/edge-sss/pkg/restapi/logspec"
)

func TestController_GetOperations(t *testing.T) {
	controller := logspec.New()
	require.NotNil(t, controller)

	ops := controller.GetOperations()
	require.Len(t, ops, 3)

	routes := map[string]bool{}
	for _, op := range ops {
		routes[op.Method()+" "+op.Path()] = true
	}

	require.True(t, routes[http.MethodPut+" /logspec"])
	require.True(t, routes[http.MethodGet+" /logspec"])
	require.True(t, routes[http.MethodGet+" /logspec/*"])
}
