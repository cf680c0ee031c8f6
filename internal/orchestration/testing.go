/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package orchestration

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockOperations implements Operations for testing
type MockOperations struct {
	mock.Mock
}

func (m *MockOperations) CreateStack(ctx context.Context, input CreateStackInput) (*Stack, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Stack), args.Error(1)
}

func (m *MockOperations) UpdateStack(ctx context.Context, input UpdateStackInput) (*Stack, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Stack), args.Error(1)
}

func (m *MockOperations) DeleteStack(ctx context.Context, stackName string) error {
	args := m.Called(ctx, stackName)
	return args.Error(0)
}

func (m *MockOperations) GetStack(ctx context.Context, stackName string) (*Stack, error) {
	args := m.Called(ctx, stackName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Stack), args.Error(1)
}

func (m *MockOperations) ListStackDetails(ctx context.Context) ([]*Stack, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Stack), args.Error(1)
}

func (m *MockOperations) ListStacks(ctx context.Context) ([]*StackSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*StackSummary), args.Error(1)
}

func (m *MockOperations) ListEvents(ctx context.Context, stackName string) ([]Event, error) {
	args := m.Called(ctx, stackName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Event), args.Error(1)
}

func (m *MockOperations) GetStackResource(ctx context.Context, stackName, logicalResourceID string) (*ResourceDetail, error) {
	args := m.Called(ctx, stackName, logicalResourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ResourceDetail), args.Error(1)
}

func (m *MockOperations) ListStackResources(ctx context.Context, stackName string) ([]Resource, error) {
	args := m.Called(ctx, stackName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Resource), args.Error(1)
}

func (m *MockOperations) ListResourceDetails(ctx context.Context, input ListResourceDetailsInput) ([]ResourceDetail, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ResourceDetail), args.Error(1)
}

func (m *MockOperations) ValidateTemplate(ctx context.Context, input ValidateTemplateInput) (*ValidationResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ValidationResult), args.Error(1)
}

func (m *MockOperations) GetStackTemplate(ctx context.Context, stackName string) (string, error) {
	args := m.Called(ctx, stackName)
	return args.String(0), args.Error(1)
}

func (m *MockOperations) EstimateTemplateCost(ctx context.Context, input EstimateTemplateCostInput) (*CostEstimate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CostEstimate), args.Error(1)
}

// Ensure the mock satisfies the interface it doubles
var _ Operations = (*MockOperations)(nil)
