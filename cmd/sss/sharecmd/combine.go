/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sharecmd

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trustbloc/edge-sss/pkg/sss/shamir"
	cmdutils "github.com/trustbloc/edge-sss/pkg/utils/cmd"
)

const (
	shareFlagName  = "share"
	shareEnvKey    = "SSS_SHARE"
	shareFlagUsage = "Hex encoded share. Repeat for every share." +
		" Alternatively, this can be set with the following environment variable (comma separated): " + shareEnvKey

	digestFlagName  = "sha256"
	digestEnvKey    = "SSS_SHA256"
	digestFlagUsage = "Hex encoded SHA-256 digest of the expected secret." +
		" With a threshold below the number of shares, share subsets are searched until one matches." +
		" Alternatively, this can be set with the following environment variable: " + digestEnvKey

	hexFlagName  = "hex"
	hexFlagUsage = "Print the secret hex encoded instead of as text."
)

var errNoCombination = errors.New("no combination of shares produced the expected secret")

// GetCombineCmd returns the command that recovers a secret from shares.
func GetCombineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Recover a secret from shares",
		Long:  "Recover a secret from shares, optionally searching subsets for one matching a SHA-256 digest.",
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := cmdutils.GetUserSetVarFromArrayString(cmd, shareFlagName, shareEnvKey, false)
			if err != nil {
				return err
			}

			opts, err := combineOptions(cmd)
			if err != nil {
				return err
			}

			shares := make([]shamir.Share, len(encoded))

			for i, e := range encoded {
				if shares[i], err = shamir.ParseShare(e); err != nil {
					return fmt.Errorf("share %d: %w", i, err)
				}
			}

			secret, found, err := shamir.Combine(shares, opts...)
			if err != nil {
				return err
			}

			if !found {
				return errNoCombination
			}

			out := string(secret)

			if asHex, _ := cmd.Flags().GetBool(hexFlagName); asHex { // nolint:errcheck // flag is defined below
				out = hex.EncodeToString(secret)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}

	cmd.Flags().StringArrayP(shareFlagName, "", []string{}, shareFlagUsage)
	cmd.Flags().StringP(thresholdFlagName, "k", "", thresholdFlagUsage)
	cmd.Flags().StringP(digestFlagName, "", "", digestFlagUsage)
	cmd.Flags().Bool(hexFlagName, false, hexFlagUsage)

	return cmd
}

func combineOptions(cmd *cobra.Command) ([]shamir.Option, error) {
	var opts []shamir.Option

	threshold, err := cmdutils.GetUserSetVarFromInt(cmd, thresholdFlagName, thresholdEnvKey, 0)
	if err != nil {
		return nil, err
	}

	if threshold != 0 {
		opts = append(opts, shamir.WithThreshold(threshold))
	}

	digestHex, err := cmdutils.GetUserSetVarFromString(cmd, digestFlagName, digestEnvKey, true)
	if err != nil {
		return nil, err
	}

	if digestHex != "" {
		digest, err := hex.DecodeString(digestHex)
		if err != nil {
			return nil, fmt.Errorf("invalid sha256: %w", err)
		}

		opts = append(opts, shamir.WithPredicate(shamir.SHA256Predicate(digest)))
	}

	return opts, nil
}
