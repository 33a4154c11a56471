/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mysql

import "errors"

const (
	failureWhileOpeningMySQLConnectionErrMsg   = "failure while opening MySQL connection: %w"
	failureWhilePingingMySQLErrMsg             = "failure while pinging MySQL: %w"
	failureWhileQueryingForTableErrMsg         = "failed to query mysql for existence of table '%s': %w"
	failureWhileCreatingTableErrMsg            = "failure while creating table %s: %w"
	failureWhileExecutingInsertStatementErrMsg = "failure while executing insert statement on table %s: %w"
	failureWhileQueryingRowErrMsg              = "failure while querying row: %w"
	failureWhileDeleteFromTableErrMsg          = "failure while executing delete statement: %w"
	failureWhileGettingRowsAffectedErrMsg      = "failure while getting rows affected: %w"
	failureWhileClosingMySQLConnection         = "failure while closing MySQL DB connection: %w"
)

var (
	errBlankDBPath      = errors.New("DB URL for new mySQL DB provider can't be blank")
	errInvalidStoreName = errors.New("store name may only contain letters, digits and underscores")
)
