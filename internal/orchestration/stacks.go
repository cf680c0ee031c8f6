/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package orchestration

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// StackStatus represents the lifecycle status of a stack or resource
type StackStatus string

const (
	StackStatusCreateInProgress   StackStatus = "CREATE_IN_PROGRESS"
	StackStatusCreateComplete     StackStatus = "CREATE_COMPLETE"
	StackStatusCreateFailed       StackStatus = "CREATE_FAILED"
	StackStatusUpdateInProgress   StackStatus = "UPDATE_IN_PROGRESS"
	StackStatusUpdateComplete     StackStatus = "UPDATE_COMPLETE"
	StackStatusUpdateFailed       StackStatus = "UPDATE_FAILED"
	StackStatusDeleteInProgress   StackStatus = "DELETE_IN_PROGRESS"
	StackStatusDeleteComplete     StackStatus = "DELETE_COMPLETE"
	StackStatusDeleteFailed       StackStatus = "DELETE_FAILED"
	StackStatusRollbackInProgress StackStatus = "ROLLBACK_IN_PROGRESS"
	StackStatusRollbackComplete   StackStatus = "ROLLBACK_COMPLETE"
	StackStatusRollbackFailed     StackStatus = "ROLLBACK_FAILED"
)

// InProgress reports whether the status describes an ongoing operation
func (s StackStatus) InProgress() bool {
	return strings.HasSuffix(string(s), "_IN_PROGRESS")
}

// Failed reports whether the status describes a failed operation
func (s StackStatus) Failed() bool {
	return strings.HasSuffix(string(s), "_FAILED")
}

// Complete reports whether the status describes a completed operation
func (s StackStatus) Complete() bool {
	return strings.HasSuffix(string(s), "_COMPLETE")
}

// StackSummary is the abbreviated stack record returned by list operations
type StackSummary struct {
	ID          string      `json:"id"`
	Name        string      `json:"stack_name"`
	Status      StackStatus `json:"stack_status"`
	CreatedTime time.Time   `json:"creation_time"`
	UpdatedTime *time.Time  `json:"updated_time,omitempty"`
	Description string      `json:"description,omitempty"`
}

// Stack is the full stack record returned by describe operations
type Stack struct {
	ID              string            `json:"id"`
	Name            string            `json:"stack_name"`
	Status          StackStatus       `json:"stack_status"`
	StatusReason    string            `json:"stack_status_reason,omitempty"`
	CreatedTime     time.Time         `json:"creation_time"`
	UpdatedTime     *time.Time        `json:"updated_time,omitempty"`
	Description     string            `json:"description,omitempty"`
	Parameters      map[string]string `json:"parameters,omitempty"`
	Outputs         map[string]string `json:"outputs,omitempty"`
	TimeoutMins     int               `json:"timeout_mins,omitempty"`
	DisableRollback bool              `json:"disable_rollback"`
}

// CreateStackInput contains parameters for creating a stack
type CreateStackInput struct {
	StackName       string
	TemplateBody    string
	TemplateURL     string
	Parameters      map[string]string
	TimeoutMins     int
	DisableRollback bool
}

// UpdateStackInput contains parameters for updating a stack
type UpdateStackInput struct {
	StackName       string
	TemplateBody    string
	TemplateURL     string
	Parameters      map[string]string
	TimeoutMins     int
	DisableRollback bool
}

// ValidateTemplateInput contains the template to validate
type ValidateTemplateInput struct {
	TemplateBody string
	TemplateURL  string
	Parameters   map[string]string
}

// ValidationResult describes the parameters a template accepts
type ValidationResult struct {
	Description string              `json:"description,omitempty"`
	Parameters  []TemplateParameter `json:"parameters,omitempty"`
}

// TemplateParameter is one parameter definition from a validated template
type TemplateParameter struct {
	Key          string `json:"parameter_key"`
	DefaultValue string `json:"default_value,omitempty"`
	Description  string `json:"description,omitempty"`
	NoEcho       bool   `json:"no_echo,omitempty"`
}

// EstimateTemplateCostInput contains parameters for a cost estimate
type EstimateTemplateCostInput struct {
	StackName    string
	TemplateBody string
	TemplateURL  string
	Parameters   map[string]string
}

// CostEstimate points at the calculator for the estimated monthly cost
type CostEstimate struct {
	URL string `json:"url"`
}

// stackRequest is the wire format shared by create and update
type stackRequest struct {
	StackName       string            `json:"stack_name"`
	Template        string            `json:"template,omitempty"`
	TemplateURL     string            `json:"template_url,omitempty"`
	Parameters      map[string]string `json:"parameters,omitempty"`
	TimeoutMins     int               `json:"timeout_mins,omitempty"`
	DisableRollback bool              `json:"disable_rollback"`
}

// stackEnvelope wraps single-stack responses
type stackEnvelope struct {
	Stack *Stack `json:"stack"`
}

// CreateStack creates a new stack from a template
func (c *RESTClient) CreateStack(ctx context.Context, input CreateStackInput) (*Stack, error) {
	request := stackRequest{
		StackName:       input.StackName,
		Template:        input.TemplateBody,
		TemplateURL:     input.TemplateURL,
		Parameters:      input.Parameters,
		TimeoutMins:     input.TimeoutMins,
		DisableRollback: input.DisableRollback,
	}

	var out stackEnvelope
	if err := c.do(ctx, http.MethodPost, "/stacks", nil, request, &out); err != nil {
		return nil, fmt.Errorf("failed to create stack %s: %w", input.StackName, err)
	}

	return out.Stack, nil
}

// UpdateStack updates an existing stack from a template
func (c *RESTClient) UpdateStack(ctx context.Context, input UpdateStackInput) (*Stack, error) {
	request := stackRequest{
		StackName:       input.StackName,
		Template:        input.TemplateBody,
		TemplateURL:     input.TemplateURL,
		Parameters:      input.Parameters,
		TimeoutMins:     input.TimeoutMins,
		DisableRollback: input.DisableRollback,
	}

	var out stackEnvelope
	if err := c.do(ctx, http.MethodPut, stackPath(input.StackName), nil, request, &out); err != nil {
		return nil, fmt.Errorf("failed to update stack %s: %w", input.StackName, err)
	}

	return out.Stack, nil
}

// DeleteStack starts deletion of a stack
func (c *RESTClient) DeleteStack(ctx context.Context, stackName string) error {
	if err := c.do(ctx, http.MethodDelete, stackPath(stackName), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete stack %s: %w", stackName, err)
	}
	return nil
}

// GetStack retrieves detailed information about a specific stack
func (c *RESTClient) GetStack(ctx context.Context, stackName string) (*Stack, error) {
	var out stackEnvelope
	if err := c.do(ctx, http.MethodGet, stackPath(stackName), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to describe stack %s: %w", stackName, err)
	}
	if out.Stack == nil {
		return nil, fmt.Errorf("stack %s not found", stackName)
	}
	return out.Stack, nil
}

// ListStackDetails retrieves detailed information about every stack
func (c *RESTClient) ListStackDetails(ctx context.Context) ([]*Stack, error) {
	var out struct {
		Stacks []*Stack `json:"stacks"`
	}
	if err := c.do(ctx, http.MethodGet, "/stacks/detail", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to describe stacks: %w", err)
	}
	return out.Stacks, nil
}

// ListStacks returns summaries of all stacks
func (c *RESTClient) ListStacks(ctx context.Context) ([]*StackSummary, error) {
	var out struct {
		Stacks []*StackSummary `json:"stacks"`
	}
	if err := c.do(ctx, http.MethodGet, "/stacks", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list stacks: %w", err)
	}
	return out.Stacks, nil
}

// ValidateTemplate checks a template without creating anything
func (c *RESTClient) ValidateTemplate(ctx context.Context, input ValidateTemplateInput) (*ValidationResult, error) {
	request := struct {
		Template    string            `json:"template,omitempty"`
		TemplateURL string            `json:"template_url,omitempty"`
		Parameters  map[string]string `json:"parameters,omitempty"`
	}{
		Template:    input.TemplateBody,
		TemplateURL: input.TemplateURL,
		Parameters:  input.Parameters,
	}

	var out ValidationResult
	if err := c.do(ctx, http.MethodPost, "/validate", nil, request, &out); err != nil {
		return nil, fmt.Errorf("template validation failed: %w", err)
	}

	return &out, nil
}

// GetStackTemplate retrieves the template stored for a stack, verbatim
func (c *RESTClient) GetStackTemplate(ctx context.Context, stackName string) (string, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, stackPath(stackName)+"/template", nil, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get template for stack %s: %w", stackName, err)
	}
	return string(raw), nil
}

// EstimateTemplateCost asks the service for a monthly cost estimate
func (c *RESTClient) EstimateTemplateCost(ctx context.Context, input EstimateTemplateCostInput) (*CostEstimate, error) {
	request := struct {
		StackName   string            `json:"stack_name"`
		Template    string            `json:"template,omitempty"`
		TemplateURL string            `json:"template_url,omitempty"`
		Parameters  map[string]string `json:"parameters,omitempty"`
	}{
		StackName:   input.StackName,
		Template:    input.TemplateBody,
		TemplateURL: input.TemplateURL,
		Parameters:  input.Parameters,
	}

	var out CostEstimate
	if err := c.do(ctx, http.MethodPost, "/estimate_template_cost", nil, request, &out); err != nil {
		return nil, fmt.Errorf("failed to estimate cost for stack %s: %w", input.StackName, err)
	}

	return &out, nil
}
