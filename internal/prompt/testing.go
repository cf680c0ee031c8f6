/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"github.com/stretchr/testify/mock"
)

// MockPrompter implements Prompter for testing
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) ConfirmDeletion(stackName string) (bool, error) {
	args := m.Called(stackName)
	return args.Bool(0), args.Error(1)
}
