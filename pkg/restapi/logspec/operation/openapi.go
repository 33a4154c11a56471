/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

// emptyRes model
//
// swagger:response emptyRes
type emptyRes struct { // nolint:unused,deadcode // struct used only to generate openapi spec
}

// changeLogSpecReq model
//
// swagger:parameters changeLogSpecReq
type changeLogSpecReq struct { // nolint:unused,deadcode // struct used only to generate openapi spec
	// in: body
	Body struct {
		// The new log specification
		//
		// Required: true
		// Example: edge-sss/shamir=debug:edge-sss/restapi=critical:error
		Spec string `json:"spec"`
	}
}

// getLogSpecRes model
//
// swagger:response getLogSpecRes
type getLogSpecRes struct { // nolint:unused,deadcode // struct used only to generate openapi spec
	// in: body
	logSpec
}

// getModuleLevelReq model
//
// swagger:parameters getModuleLevelReq
type getModuleLevelReq struct { // nolint:unused,deadcode // struct used only to generate openapi spec
	// in: path
	// Required: true
	Module string `json:"module"`
}

// getModuleLevelRes model
//
// swagger:response getModuleLevelRes
type getModuleLevelRes struct { // nolint:unused,deadcode // struct used only to generate openapi spec
	// in: body
	moduleLevel
}
