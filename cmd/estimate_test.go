/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"testing"

	"github.com/heatops/heatctl/internal/orchestration"
	"github.com/heatops/heatctl/internal/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEstimateCommand_Exists(t *testing.T) {
	estimateCmd := findCommand(rootCmd, "estimate-template-cost")

	require.NotNil(t, estimateCmd, "estimate-template-cost command should be registered")
	assert.Equal(t, "estimate-template-cost <stack-name>", estimateCmd.Use)
}

func TestEstimateCommand_EstimatesCost(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	mockResolver := &resolve.MockResolver{}

	oldOperations := operations
	oldResolver := templateResolver
	SetOperations(mockOps)
	SetTemplateResolver(mockResolver)
	defer func() {
		SetOperations(oldOperations)
		SetTemplateResolver(oldResolver)
	}()

	mockResolver.On("Resolve", mock.Anything).
		Return(&resolve.Source{URL: "https://example.com/wp.template"}, nil)
	mockOps.On("EstimateTemplateCost", mock.Anything, mock.MatchedBy(func(input orchestration.EstimateTemplateCostInput) bool {
		return input.StackName == "mystack" && input.TemplateURL == "https://example.com/wp.template"
	})).Return(&orchestration.CostEstimate{URL: "https://calculator.example.com/estimate"}, nil)

	err := executeWithToken("estimate-template-cost", "mystack")

	require.NoError(t, err)
	mockOps.AssertExpectations(t)
	mockResolver.AssertExpectations(t)
}

func TestEstimateCommand_RequiresStackName(t *testing.T) {
	mockOps := &orchestration.MockOperations{}
	oldOperations := operations
	SetOperations(mockOps)
	defer SetOperations(oldOperations)

	rootCmd.SetArgs([]string{"estimate-template-cost"})

	err := rootCmd.Execute()

	require.Error(t, err)
	mockOps.AssertNotCalled(t, "EstimateTemplateCost")
}
