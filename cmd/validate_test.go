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

func TestValidateCommand_Exists(t *testing.T) {
	validateCmd := findCommand(rootCmd, "validate")

	require.NotNil(t, validateCmd, "validate command should be registered")
	assert.Equal(t, "validate", validateCmd.Use)
}

func TestValidateCommand_ValidatesTemplate(t *testing.T) {
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
		Return(&resolve.Source{Body: `{"Resources": {}}`}, nil)
	mockOps.On("ValidateTemplate", mock.Anything, mock.MatchedBy(func(input orchestration.ValidateTemplateInput) bool {
		return input.TemplateBody == `{"Resources": {}}` && input.TemplateURL == ""
	})).Return(&orchestration.ValidationResult{Description: "a valid template"}, nil)

	err := executeWithToken("validate")

	require.NoError(t, err)
	mockOps.AssertExpectations(t)
	mockResolver.AssertExpectations(t)
}

func TestValidateCommand_ResolverFailureAbortsValidation(t *testing.T) {
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
		Return(nil, &resolve.UnavailableError{Reason: "no template source configured"})

	err := executeWithToken("validate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot validate")
	mockOps.AssertNotCalled(t, "ValidateTemplate")
}
