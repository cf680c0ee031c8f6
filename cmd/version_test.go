/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand_Exists(t *testing.T) {
	versionCmd := findCommand(rootCmd, "version")

	require.NotNil(t, versionCmd, "version command should be registered")
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCommand_NeedsNoCredentials(t *testing.T) {
	// version must run without a token, a username or a password
	flags := rootCmd.PersistentFlags()
	_ = flags.Set("token", "")
	_ = flags.Set("username", "")
	_ = flags.Set("password", "")
	for _, env := range []string{"OS_USERNAME", "OS_PASSWORD", "OS_TENANT_NAME", "OS_AUTH_URL", "OS_AUTH_STRATEGY"} {
		t.Setenv(env, "")
	}

	rootCmd.SetArgs([]string{"version"})

	err := rootCmd.Execute()

	assert.NoError(t, err, "version should not require credentials")
}
