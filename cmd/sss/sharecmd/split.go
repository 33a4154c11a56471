/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package sharecmd holds the split and combine commands.
package sharecmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trustbloc/edge-sss/pkg/sss/shamir"
	cmdutils "github.com/trustbloc/edge-sss/pkg/utils/cmd"
)

const (
	thresholdFlagName  = "threshold"
	thresholdEnvKey    = "SSS_THRESHOLD"
	thresholdFlagUsage = "Number of shares needed to recover the secret." +
		" Alternatively, this can be set with the following environment variable: " + thresholdEnvKey

	sharesFlagName  = "shares"
	sharesEnvKey    = "SSS_SHARES"
	sharesFlagUsage = "Number of shares to produce. Defaults to the threshold." +
		" Alternatively, this can be set with the following environment variable: " + sharesEnvKey

	secretFlagName  = "secret"
	secretEnvKey    = "SSS_SECRET"
	secretFlagUsage = "Secret text to split." +
		" Alternatively, this can be set with the following environment variable: " + secretEnvKey

	secretFileFlagName  = "secret-file"
	secretFileEnvKey    = "SSS_SECRET_FILE"
	secretFileFlagUsage = "File whose bytes are the secret to split." +
		" Alternatively, this can be set with the following environment variable: " + secretFileEnvKey
)

var errNoSecret = errors.New("one of secret (SSS_SECRET) or secret-file (SSS_SECRET_FILE) must be set")

// GetSplitCmd returns the command that splits a secret and prints one hex share per line.
func GetSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into shares",
		Long:  "Split a secret into shares, any threshold of which recover it. Shares are printed one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, err := cmdutils.GetUserSetVarFromInt(cmd, thresholdFlagName, thresholdEnvKey, 0)
			if err != nil {
				return err
			}

			total, err := cmdutils.GetUserSetVarFromInt(cmd, sharesFlagName, sharesEnvKey, threshold)
			if err != nil {
				return err
			}

			secret, err := getSecret(cmd)
			if err != nil {
				return err
			}

			shares, err := shamir.Split(secret, threshold, shamir.WithTotalShares(total))
			if err != nil {
				return err
			}

			for _, s := range shares {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), s.String()); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringP(thresholdFlagName, "k", "", thresholdFlagUsage)
	cmd.Flags().StringP(sharesFlagName, "n", "", sharesFlagUsage)
	cmd.Flags().StringP(secretFlagName, "s", "", secretFlagUsage)
	cmd.Flags().StringP(secretFileFlagName, "f", "", secretFileFlagUsage)

	return cmd
}

func getSecret(cmd *cobra.Command) ([]byte, error) {
	secret, err := cmdutils.GetUserSetVarFromString(cmd, secretFlagName, secretEnvKey, true)
	if err != nil {
		return nil, err
	}

	if secret != "" {
		return shamir.InputBytes(shamir.Text(secret))
	}

	path, err := cmdutils.GetUserSetVarFromString(cmd, secretFileFlagName, secretFileEnvKey, true)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return nil, errNoSecret
	}

	b, err := os.ReadFile(path) // nolint:gosec // path is chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read secret file: %w", err)
	}

	return b, nil
}
