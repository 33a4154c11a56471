/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

// genericError model
//
// swagger:response genericError
type genericError struct { // nolint:unused,deadcode // struct used only to generate openapi spec
	// in: body
	Body struct {
		Message string `json:"errMessage"`
	}
}

// emptyRes model
//
// swagger:response emptyRes
type emptyRes struct { // nolint:unused,deadcode // struct used only to generate openapi spec
}

// splitReq model
//
// swagger:parameters splitReq
type splitReq struct { // nolint:unused,deadcode // struct used only to generate openapi spec
	// in: body
	Body SplitRequest
}

// splitRes model
//
// swagger:response splitRes
type splitRes struct { // nolint:unused,deadcode // struct used only to generate openapi spec
	// in: body
	Body SplitResponse
}

// combineReq model
//
// swagger:parameters combineReq
type combineReq struct { // nolint:unused,deadcode // struct used only to generate openapi spec
	// in: body
	Body CombineRequest
}

// recoverReq model
//
// swagger:parameters recoverReq
type recoverReq struct { // nolint:unused,deadcode // struct used only to generate openapi spec
	// in: path
	// Required: true
	ID string `json:"id"`

	// in: body
	Body RecoverRequest
}

// secretRes model
//
// swagger:response secretRes
type secretRes struct { // nolint:unused,deadcode // struct used only to generate openapi spec
	// in: body
	Body SecretResponse
}

// shareSetReq model
//
// swagger:parameters shareSetReq
type shareSetReq struct { // nolint:unused,deadcode // struct used only to generate openapi spec
	// in: path
	// Required: true
	ID string `json:"id"`
}

// shareSetRes model
//
// swagger:response shareSetRes
type shareSetRes struct { // nolint:unused,deadcode // struct used only to generate openapi spec
	// in: body
	Body ShareSetResponse
}

// deleteShareReq model
//
// swagger:parameters deleteShareReq
type deleteShareReq struct { // nolint:unused,deadcode // struct used only to generate openapi spec
	// in: path
	// Required: true
	ID string `json:"id"`

	// in: path
	// Required: true
	X int `json:"x"`
}
