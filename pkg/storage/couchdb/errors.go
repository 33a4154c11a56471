/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package couchdbstore

import "errors"

const (
	failToInstantiateKivikClientErrMsg = "failure while instantiate Kivik CouchDB client: %w"
	failToPingCouchDB                  = "failure while pinging couchDB: %w"
	dbExistsCheckFailure               = "failure while checking if the database exists: %w"
	failureDuringCouchDBCreateDBCall   = "failure during CouchDB create DB call: %w"
	failureDuringCouchDBPutCall        = "failure during CouchDB put document call: %w"
	failureDuringCouchDBDeleteCall     = "failure during CouchDB delete document call: %w"
	failureWhileClosingKivikClient     = "failure while closing Kivik CouchDB client: %w"
	getRawDocFailureErrMsg             = "failure while getting raw CouchDB document: %w"
	failureWhileDecodingValue          = "failure while decoding stored value: %w"

	// Error messages returned from Kivik CouchDB client that we directly check for.
	duplicateDBErrMsgFromKivik = "Precondition Failed"
	docNotFoundErrMsgFromKivik = "Not Found"
)

var (
	errBlankHost         = errors.New("hostURL for new CouchDB provider can't be blank")
	errMissingRevIDField = errors.New("the retrieved CouchDB document is missing the _rev field")
	errMissingValueField = errors.New("the retrieved CouchDB document is missing the value field")
)
