/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"testing"

	"github.com/heatops/heatctl/internal/orchestration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDescribeCommand_Exists(t *testing.T) {
	describeCmd := findCommand(rootCmd, "describe")

	require.NotNil(t, describeCmd, "describe command should be registered")
	assert.Equal(t, "describe [stack-name]", describeCmd.Use)
}

func TestDescribeCommand_SingleStack(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	oldOperations := operations
	SetOperations(mockOps)
	defer SetOperations(oldOperations)

	mockOps.On("GetStack", mock.Anything, "mystack").Return(&orchestration.Stack{
		Name:   "mystack",
		Status: orchestration.StackStatusCreateComplete,
	}, nil)

	err := executeWithToken("describe", "mystack")

	require.NoError(t, err)
	mockOps.AssertExpectations(t)
	mockOps.AssertNotCalled(t, "ListStackDetails")
}

func TestDescribeCommand_AllStacks(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	oldOperations := operations
	SetOperations(mockOps)
	defer SetOperations(oldOperations)

	mockOps.On("ListStackDetails", mock.Anything).Return([]*orchestration.Stack{
		{Name: "a", Status: orchestration.StackStatusCreateComplete},
		{Name: "b", Status: orchestration.StackStatusUpdateComplete},
	}, nil)

	err := executeWithToken("describe")

	require.NoError(t, err)
	mockOps.AssertExpectations(t)
	mockOps.AssertNotCalled(t, "GetStack")
}

func TestDescribeCommand_RejectsExtraArgs(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	oldOperations := operations
	SetOperations(mockOps)
	defer SetOperations(oldOperations)

	rootCmd.SetArgs([]string{"describe", "a", "b"})

	err := rootCmd.Execute()

	require.Error(t, err)
	mockOps.AssertNotCalled(t, "GetStack")
}
