/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"testing"

	"github.com/heatops/heatctl/internal/orchestration"
	"github.com/heatops/heatctl/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteCommand_Exists(t *testing.T) {
	deleteCmd := findCommand(rootCmd, "delete")

	require.NotNil(t, deleteCmd, "delete command should be registered")
	assert.Equal(t, "delete <stack-name>", deleteCmd.Use)
}

func TestDeleteCommand_RequiresStackName(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	oldOperations := operations
	SetOperations(mockOps)
	defer SetOperations(oldOperations)

	rootCmd.SetArgs([]string{"delete"})

	err := rootCmd.Execute()

	require.Error(t, err)
	mockOps.AssertNotCalled(t, "DeleteStack")
}

func TestDeleteCommand_AssumeYesSkipsPrompt(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	mockPrompter := &prompt.MockPrompter{}

	oldOperations := operations
	SetOperations(mockOps)
	prompt.SetPrompter(mockPrompter)
	defer func() {
		SetOperations(oldOperations)
		prompt.SetPrompter(prompt.NewStdinPrompter())
		_ = rootCmd.PersistentFlags().Set("yes", "false")
	}()

	mockOps.On("DeleteStack", mock.Anything, "mystack").Return(nil)

	err := executeWithToken("delete", "mystack", "--yes")

	require.NoError(t, err)
	mockOps.AssertExpectations(t)
	mockPrompter.AssertNotCalled(t, "ConfirmDeletion")
}

func TestDeleteCommand_ConfirmedPromptDeletes(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	mockPrompter := &prompt.MockPrompter{}

	oldOperations := operations
	SetOperations(mockOps)
	prompt.SetPrompter(mockPrompter)
	defer func() {
		SetOperations(oldOperations)
		prompt.SetPrompter(prompt.NewStdinPrompter())
	}()

	mockPrompter.On("ConfirmDeletion", "mystack").Return(true, nil)
	mockOps.On("DeleteStack", mock.Anything, "mystack").Return(nil)

	err := executeWithToken("delete", "mystack")

	require.NoError(t, err)
	mockOps.AssertExpectations(t)
	mockPrompter.AssertExpectations(t)
}

func TestDeleteCommand_DeclinedPromptAborts(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	mockPrompter := &prompt.MockPrompter{}

	oldOperations := operations
	SetOperations(mockOps)
	prompt.SetPrompter(mockPrompter)
	defer func() {
		SetOperations(oldOperations)
		prompt.SetPrompter(prompt.NewStdinPrompter())
	}()

	mockPrompter.On("ConfirmDeletion", "mystack").Return(false, nil)

	err := executeWithToken("delete", "mystack")

	// Declining is not an error, the command just does nothing
	require.NoError(t, err)
	mockOps.AssertNotCalled(t, "DeleteStack")
	mockPrompter.AssertExpectations(t)
}
