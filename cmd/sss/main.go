/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main is the sss command: split and combine secrets, or run the REST server.
package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/trustbloc/edge-sss/cmd/sss/sharecmd"
	"github.com/trustbloc/edge-sss/cmd/sss/startcmd"
	"github.com/trustbloc/edge-sss/pkg/log"
)

var logger = log.New("edge-sss/cmd")

func main() {
	// a missing .env is fine, settings may come from flags or the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Fatalf("Failed to load .env: %s", err)
	}

	rootCmd := &cobra.Command{
		Use: "sss",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(sharecmd.GetSplitCmd())
	rootCmd.AddCommand(sharecmd.GetCombineCmd())
	rootCmd.AddCommand(startcmd.GetStartCmd(&startcmd.HTTPServer{}))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("Failed to run sss: %s", err)
	}
}
