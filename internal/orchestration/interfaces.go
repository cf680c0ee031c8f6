/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package orchestration

import "context"

// Operations defines the remote orchestration API surface, one method per
// CLI command. This allows for easier testing with mock implementations.
type Operations interface {
	CreateStack(ctx context.Context, input CreateStackInput) (*Stack, error)
	UpdateStack(ctx context.Context, input UpdateStackInput) (*Stack, error)
	DeleteStack(ctx context.Context, stackName string) error
	GetStack(ctx context.Context, stackName string) (*Stack, error)
	ListStackDetails(ctx context.Context) ([]*Stack, error)
	ListStacks(ctx context.Context) ([]*StackSummary, error)

	// ListEvents lists events for one stack, or for all stacks when
	// stackName is empty.
	ListEvents(ctx context.Context, stackName string) ([]Event, error)

	GetStackResource(ctx context.Context, stackName, logicalResourceID string) (*ResourceDetail, error)
	ListStackResources(ctx context.Context, stackName string) ([]Resource, error)
	ListResourceDetails(ctx context.Context, input ListResourceDetailsInput) ([]ResourceDetail, error)

	ValidateTemplate(ctx context.Context, input ValidateTemplateInput) (*ValidationResult, error)
	GetStackTemplate(ctx context.Context, stackName string) (string, error)
	EstimateTemplateCost(ctx context.Context, input EstimateTemplateCostInput) (*CostEstimate, error)
}

// Ensure that RESTClient implements Operations
var _ Operations = (*RESTClient)(nil)
