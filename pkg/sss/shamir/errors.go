/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir

import "errors"

// ErrInvalidThreshold is returned when the threshold is below 2.
var ErrInvalidThreshold = errors.New("threshold must be at least 2")

// ErrInsufficientShares is returned when fewer shares than the threshold are requested.
var ErrInsufficientShares = errors.New("number of shares must not be less than the threshold")

// ErrTooManyShares is returned when more than 255 shares are requested.
var ErrTooManyShares = errors.New("number of shares must not exceed 255")

// ErrInvalidByte is returned when a secret value is not a valid field element.
var ErrInvalidByte = errors.New("secret value is not a byte")

// ErrNoShares is returned when combining an empty share collection.
var ErrNoShares = errors.New("no shares provided")

// ErrUnequalKeyLengths is returned when shares of different lengths are combined.
var ErrUnequalKeyLengths = errors.New("shares have different lengths")

// ErrDuplicateXCoordinate is returned when two shares carry the same x-coordinate.
var ErrDuplicateXCoordinate = errors.New("duplicate share x-coordinate")

// ErrInvalidShare is returned for a share that is empty or has x-coordinate 0.
var ErrInvalidShare = errors.New("invalid share")

// ErrEntropy is returned when the entropy source fails.
var ErrEntropy = errors.New("entropy source failure")
