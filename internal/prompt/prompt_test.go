/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMockPrompter_Interface verifies MockPrompter implements Prompter interface
func TestMockPrompter_Interface(t *testing.T) {
	var _ Prompter = (*MockPrompter)(nil)
}

// TestSetPrompter_ChangesDefaultPrompter tests the SetPrompter functionality
func TestSetPrompter_ChangesDefaultPrompter(t *testing.T) {
	originalPrompter := defaultPrompter
	defer SetPrompter(originalPrompter)

	mockPrompter := &MockPrompter{}
	mockPrompter.On("ConfirmDeletion", "mystack").Return(true, nil).Once()

	SetPrompter(mockPrompter)

	result, err := ConfirmDeletion("mystack")

	assert.NoError(t, err)
	assert.True(t, result)
	mockPrompter.AssertExpectations(t)
}

// TestDefaultPrompter_IsStdinPrompter verifies default prompter type
func TestDefaultPrompter_IsStdinPrompter(t *testing.T) {
	_, ok := defaultPrompter.(*StdinPrompter)
	assert.True(t, ok, "Default prompter should be a StdinPrompter")
}

// TestResponseParsing tests the logic for parsing user responses
func TestResponseParsing(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"yes lowercase", "yes", true},
		{"yes uppercase", "YES", true},
		{"yes mixed case", "Yes", true},
		{"y lowercase", "y", true},
		{"y uppercase", "Y", true},
		{"no lowercase", "no", false},
		{"n lowercase", "n", false},
		{"empty input", "", false},
		{"whitespace only", "   ", false},
		{"y with whitespace", "  y  ", true},
		{"unrelated text", "maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := &StdinPrompter{input: strings.NewReader(tt.input + "\n")}

			result, err := prompter.ConfirmDeletion("mystack")

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result, fmt.Sprintf("input %q", tt.input))
		})
	}
}

// TestStdinPrompter_EOF verifies that closed input counts as a "no"
func TestStdinPrompter_EOF(t *testing.T) {
	prompter := &StdinPrompter{input: strings.NewReader("")}

	result, err := prompter.ConfirmDeletion("mystack")

	assert.NoError(t, err)
	assert.False(t, result, "EOF should be treated as declining")
}
