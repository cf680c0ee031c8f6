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

func TestResourceCommand_Exists(t *testing.T) {
	resourceCmd := findCommand(rootCmd, "resource")

	require.NotNil(t, resourceCmd, "resource command should be registered")
	assert.Equal(t, "resource <stack-name> <logical-resource-id>", resourceCmd.Use)
}

func TestResourceCommand_DescribesResource(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	oldOperations := operations
	SetOperations(mockOps)
	defer SetOperations(oldOperations)

	mockOps.On("GetStackResource", mock.Anything, "mystack", "WebServer").
		Return(&orchestration.ResourceDetail{
			Resource:  orchestration.Resource{LogicalResourceID: "WebServer"},
			StackName: "mystack",
		}, nil)

	err := executeWithToken("resource", "mystack", "WebServer")

	require.NoError(t, err)
	mockOps.AssertExpectations(t)
}

func TestResourceCommand_RequiresBothArgs(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	oldOperations := operations
	SetOperations(mockOps)
	defer SetOperations(oldOperations)

	rootCmd.SetArgs([]string{"resource", "mystack"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s), received 1")
	mockOps.AssertNotCalled(t, "GetStackResource")
}

func TestResourceListCommand_ListsResources(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	oldOperations := operations
	SetOperations(mockOps)
	defer SetOperations(oldOperations)

	mockOps.On("ListStackResources", mock.Anything, "mystack").
		Return([]orchestration.Resource{
			{LogicalResourceID: "WebServer", ResourceType: "AWS::EC2::Instance"},
		}, nil)

	err := executeWithToken("resource-list", "mystack")

	require.NoError(t, err)
	mockOps.AssertExpectations(t)
}

func TestResourceListDetailsCommand_StackOnly(t *testing.T) {
	// One argument leaves the logical resource id filter empty
	mockOps := &orchestration.MockOperations{}
	oldOperations := operations
	SetOperations(mockOps)
	defer SetOperations(oldOperations)

	mockOps.On("ListResourceDetails", mock.Anything,
		orchestration.ListResourceDetailsInput{NameOrPID: "mystack"}).
		Return([]orchestration.ResourceDetail{}, nil)

	err := executeWithToken("resource-list-details", "mystack")

	require.NoError(t, err)
	mockOps.AssertExpectations(t)
}

func TestResourceListDetailsCommand_WithLogicalID(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	oldOperations := operations
	SetOperations(mockOps)
	defer SetOperations(oldOperations)

	mockOps.On("ListResourceDetails", mock.Anything,
		orchestration.ListResourceDetailsInput{
			NameOrPID:         "mystack",
			LogicalResourceID: "WebServer",
		}).
		Return([]orchestration.ResourceDetail{}, nil)

	err := executeWithToken("resource-list-details", "mystack", "WebServer")

	require.NoError(t, err)
	mockOps.AssertExpectations(t)
}

func TestResourceListDetailsCommand_RequiresAnArg(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	oldOperations := operations
	SetOperations(mockOps)
	defer SetOperations(oldOperations)

	rootCmd.SetArgs([]string{"resource-list-details"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts between 1 and 2 arg(s), received 0")
	mockOps.AssertNotCalled(t, "ListResourceDetails")
}
