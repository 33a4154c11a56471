/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trustbloc/edge-sss/pkg/internal/support"
	"github.com/trustbloc/edge-sss/pkg/log"
	commhttp "github.com/trustbloc/edge-sss/pkg/restapi/internal/common/http"
)

const (
	logSpecEndpoint     = "/logspec"
	moduleLevelEndpoint = logSpecEndpoint + "/*"

	invalidLogSpec = `Invalid log spec. It needs to be in the following format: ` +
		`ModuleName1=Level1:ModuleName2=Level2:ModuleNameN=LevelN:AllOtherModuleDefaultLevel
Valid log levels: critical,error,warn,info,debug
Error: %s`
)

// Handler represents an HTTP handler for each controller API endpoint.
type Handler interface {
	Path() string
	Method() string
	Handle() http.HandlerFunc
}

type logSpec struct {
	Spec string `json:"spec"`
}

type moduleLevel struct {
	Module string `json:"module"`
	Level  string `json:"level"`
}

// GetRESTHandlers gets all controller API handlers available for this service.
func GetRESTHandlers() []Handler {
	return []Handler{
		support.NewHTTPHandler(logSpecEndpoint, http.MethodPut, logSpecPutHandler),
		support.NewHTTPHandler(logSpecEndpoint, http.MethodGet, logSpecGetHandler),
		support.NewHTTPHandler(moduleLevelEndpoint, http.MethodGet, moduleLevelGetHandler),
	}
}

// Change Log Specification swagger:route PUT /logspec changeLogSpecReq
//
// Changes the current log specification.
// Format: ModuleName1=Level1:ModuleName2=Level2:ModuleNameN=LevelN:AllOtherModuleDefaultLevel
// Valid log levels: critical,error,warn,info,debug
//
// Responses:
//
//	default: genericError
//	    200: emptyRes
func logSpecPutHandler(rw http.ResponseWriter, req *http.Request) {
	var incoming logSpec

	if err := json.NewDecoder(req.Body).Decode(&incoming); err != nil {
		commhttp.WriteErrorResponse(rw, http.StatusBadRequest, fmt.Sprintf(invalidLogSpec, err))

		return
	}

	if err := log.SetSpec(incoming.Spec); err != nil {
		commhttp.WriteErrorResponse(rw, http.StatusBadRequest, fmt.Sprintf(invalidLogSpec, err))
	}
}

// Get Current Log Specification swagger:route GET /logspec getLogSpecReq
//
// Gets the current log specification.
//
// Responses:
//
//	default: genericError
//	    200: getLogSpecRes
func logSpecGetHandler(rw http.ResponseWriter, _ *http.Request) {
	commhttp.WriteResponse(rw, logSpec{Spec: log.GetSpec()})
}

// Get Module Log Level swagger:route GET /logspec/{module} getModuleLevelReq
//
// Gets the effective level of one module, which falls back to the default level.
//
// Responses:
//
//	default: genericError
//	    200: getModuleLevelRes
func moduleLevelGetHandler(rw http.ResponseWriter, req *http.Request) {
	// module names contain slashes, so the whole remaining path is the module
	module := chi.URLParam(req, "*")

	commhttp.WriteResponse(rw, moduleLevel{Module: module, Level: log.ParseString(log.GetLevel(module))})
}
