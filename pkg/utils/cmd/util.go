/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cmd resolves command settings from cobra flags with environment variable fallbacks.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// GetUserSetVarFromString returns the value of flagName if it was set on the command line,
// otherwise the value of the envKey environment variable.
// If isOptional is false, an unset or empty value is an error.
func GetUserSetVarFromString(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf(flagName+" flag not found: %w", err)
		}

		if value == "" {
			return "", fmt.Errorf("%s value is empty", flagName)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	if isOptional || isSet {
		if !isOptional && value == "" {
			return "", fmt.Errorf("%s value is empty", envKey)
		}

		return value, nil
	}

	return "", fmt.Errorf("neither %s (command line flag) nor %s (environment variable) have been set.",
		flagName, envKey)
}

// GetUserSetVarFromArrayString is GetUserSetVarFromString for repeated flags.
// The environment variable holds a comma separated list.
func GetUserSetVarFromArrayString(cmd *cobra.Command, flagName, envKey string, isOptional bool) ([]string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetStringArray(flagName)
		if err != nil {
			return nil, fmt.Errorf(flagName+" flag not found: %w", err)
		}

		if len(value) == 0 || len(value) == 1 && value[0] == "" {
			return nil, fmt.Errorf("%s value is empty", flagName)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	if isOptional || isSet {
		if !isOptional && value == "" {
			return nil, fmt.Errorf("%s value is empty", envKey)
		}

		if value == "" {
			return []string{}, nil
		}

		return strings.Split(value, ","), nil
	}

	return nil, fmt.Errorf("neither %s (command line flag) nor %s (environment variable) have been set.",
		flagName, envKey)
}

// GetUserSetVarFromInt resolves an integer setting, returning defaultValue when an optional setting is unset.
func GetUserSetVarFromInt(cmd *cobra.Command, flagName, envKey string, defaultValue int) (int, error) {
	value, err := GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return 0, err
	}

	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s [%s]: %w", flagName, value, err)
	}

	return n, nil
}
