/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

import "time"

// SplitRequest is the body of split and share set creation requests.
// Exactly one of Secret and Text is used; Text wins when both are set.
// Shares defaults to Threshold.
type SplitRequest struct {
	Secret    []byte `json:"secret,omitempty"`
	Text      string `json:"text,omitempty"`
	Threshold int    `json:"threshold"`
	Shares    int    `json:"shares"`
}

// SplitResponse lists hex encoded shares.
type SplitResponse struct {
	ID     string   `json:"id,omitempty"`
	Shares []string `json:"shares"`
}

// CombineRequest is the body of a combine request.
// Threshold 0 means all shares are used. SHA256 is the hex encoded digest of the expected secret.
type CombineRequest struct {
	Shares    []string `json:"shares"`
	Threshold int      `json:"threshold,omitempty"`
	SHA256    string   `json:"sha256,omitempty"`
}

// RecoverRequest is the body of a share set recovery request.
type RecoverRequest struct {
	SHA256 string `json:"sha256,omitempty"`
}

// SecretResponse carries a recovered secret.
type SecretResponse struct {
	Secret []byte `json:"secret"`
}

// ShareSetResponse describes a stored share set.
type ShareSetResponse struct {
	ID        string    `json:"id"`
	Threshold int       `json:"threshold"`
	Total     int       `json:"total"`
	SecretLen int       `json:"secretLength"`
	Created   time.Time `json:"created"`
	Present   []int     `json:"present"`
}
