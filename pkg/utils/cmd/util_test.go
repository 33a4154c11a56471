/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/edge-sss/pkg/utils/cmd"
)

const (
	flagName = "database-url"
	envKey   = "SSS_TEST_DATABASE_URL"

	intFlagName = "threshold"
	intEnvKey   = "SSS_TEST_THRESHOLD"
)

// newCommand returns a command whose flags were parsed from args.
func newCommand(t *testing.T, define func(c *cobra.Command), args ...string) *cobra.Command {
	t.Helper()

	c := &cobra.Command{
		Use:  "start",
		RunE: func(*cobra.Command, []string) error { return nil },
	}

	if define != nil {
		define(c)
	}

	c.SetArgs(append([]string{}, args...))
	require.NoError(t, c.Execute())

	return c
}

func stringFlag(c *cobra.Command) {
	c.Flags().String(flagName, "", "")
}

func arrayFlag(c *cobra.Command) {
	c.Flags().StringArray(flagName, []string{}, "")
}

func TestGetUserSetVarFromString(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		value, err := cmd.GetUserSetVarFromString(newCommand(t, nil), flagName, envKey, false)
		require.EqualError(t, err,
			"neither database-url (command line flag) nor SSS_TEST_DATABASE_URL (environment variable) have been set.")
		require.Empty(t, value)

		value, err = cmd.GetUserSetVarFromString(newCommand(t, nil), flagName, envKey, true)
		require.NoError(t, err)
		require.Empty(t, value)
	})

	t.Run("empty environment variable", func(t *testing.T) {
		t.Setenv(envKey, "")

		_, err := cmd.GetUserSetVarFromString(newCommand(t, nil), flagName, envKey, false)
		require.EqualError(t, err, "SSS_TEST_DATABASE_URL value is empty")
	})

	t.Run("empty flag", func(t *testing.T) {
		c := newCommand(t, stringFlag, "--"+flagName, "")

		_, err := cmd.GetUserSetVarFromString(c, flagName, envKey, true)
		require.EqualError(t, err, "database-url value is empty")
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv(envKey, "root:secret@tcp(db:3306)/")

		value, err := cmd.GetUserSetVarFromString(newCommand(t, stringFlag), flagName, envKey, false)
		require.NoError(t, err)
		require.Equal(t, "root:secret@tcp(db:3306)/", value)
	})

	t.Run("flag wins over environment variable", func(t *testing.T) {
		t.Setenv(envKey, "from-env")

		c := newCommand(t, stringFlag, "--"+flagName, "from-flag")

		value, err := cmd.GetUserSetVarFromString(c, flagName, envKey, false)
		require.NoError(t, err)
		require.Equal(t, "from-flag", value)
	})
}

func TestGetUserSetVarFromArrayString(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		value, err := cmd.GetUserSetVarFromArrayString(newCommand(t, nil), flagName, envKey, false)
		require.Error(t, err)
		require.Contains(t, err.Error(), "SSS_TEST_DATABASE_URL (environment variable) have been set.")
		require.Empty(t, value)
	})

	t.Run("empty environment variable", func(t *testing.T) {
		t.Setenv(envKey, "")

		_, err := cmd.GetUserSetVarFromArrayString(newCommand(t, nil), flagName, envKey, false)
		require.EqualError(t, err, "SSS_TEST_DATABASE_URL value is empty")
	})

	t.Run("empty flag", func(t *testing.T) {
		c := newCommand(t, arrayFlag, "--"+flagName, "")

		_, err := cmd.GetUserSetVarFromArrayString(c, flagName, envKey, false)
		require.EqualError(t, err, "database-url value is empty")
	})

	t.Run("comma separated environment variable", func(t *testing.T) {
		t.Setenv(envKey, "01ab,02cd")

		value, err := cmd.GetUserSetVarFromArrayString(newCommand(t, arrayFlag), flagName, envKey, false)
		require.NoError(t, err)
		require.Equal(t, []string{"01ab", "02cd"}, value)
	})

	t.Run("repeated flag", func(t *testing.T) {
		c := newCommand(t, arrayFlag, "--"+flagName, "01ab", "--"+flagName, "02cd")

		value, err := cmd.GetUserSetVarFromArrayString(c, flagName, envKey, false)
		require.NoError(t, err)
		require.Equal(t, []string{"01ab", "02cd"}, value)
	})
}

func TestGetUserSetVarFromInt(t *testing.T) {
	intFlag := func(c *cobra.Command) {
		c.Flags().String(intFlagName, "", "")
	}

	t.Run("default", func(t *testing.T) {
		n, err := cmd.GetUserSetVarFromInt(newCommand(t, intFlag), intFlagName, intEnvKey, 2)
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv(intEnvKey, "3")

		n, err := cmd.GetUserSetVarFromInt(newCommand(t, intFlag), intFlagName, intEnvKey, 2)
		require.NoError(t, err)
		require.Equal(t, 3, n)
	})

	t.Run("flag", func(t *testing.T) {
		t.Setenv(intEnvKey, "3")

		c := newCommand(t, intFlag, "--"+intFlagName, "5")

		n, err := cmd.GetUserSetVarFromInt(c, intFlagName, intEnvKey, 2)
		require.NoError(t, err)
		require.Equal(t, 5, n)
	})

	t.Run("not a number", func(t *testing.T) {
		t.Setenv(intEnvKey, "three")

		_, err := cmd.GetUserSetVarFromInt(newCommand(t, intFlag), intFlagName, intEnvKey, 2)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid value for threshold [three]")
	})
}
