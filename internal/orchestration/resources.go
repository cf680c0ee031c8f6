/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package orchestration

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Resource is the summary record of one stack resource
type Resource struct {
	LogicalResourceID  string      `json:"logical_resource_id"`
	PhysicalResourceID string      `json:"physical_resource_id,omitempty"`
	ResourceType       string      `json:"resource_type"`
	Status             StackStatus `json:"resource_status"`
	UpdatedTime        time.Time   `json:"updated_time"`
}

// ResourceDetail is the full record of one stack resource
type ResourceDetail struct {
	Resource
	StackName    string         `json:"stack_name,omitempty"`
	StatusReason string         `json:"resource_status_reason,omitempty"`
	Description  string         `json:"description,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// ListResourceDetailsInput identifies which resources to describe in full.
// NameOrPID is a stack name or a physical resource id; LogicalResourceID
// narrows the result to one resource and may be left empty.
type ListResourceDetailsInput struct {
	NameOrPID         string
	LogicalResourceID string
}

// GetStackResource describes a single resource within a stack
func (c *RESTClient) GetStackResource(ctx context.Context, stackName, logicalResourceID string) (*ResourceDetail, error) {
	var out struct {
		Resource *ResourceDetail `json:"resource"`
	}

	path := stackPath(stackName) + "/resources/" + url.PathEscape(logicalResourceID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to describe resource %s of stack %s: %w", logicalResourceID, stackName, err)
	}
	if out.Resource == nil {
		return nil, fmt.Errorf("resource %s not found in stack %s", logicalResourceID, stackName)
	}

	return out.Resource, nil
}

// ListStackResources returns summaries of all resources in a stack
func (c *RESTClient) ListStackResources(ctx context.Context, stackName string) ([]Resource, error) {
	var out struct {
		Resources []Resource `json:"resources"`
	}

	if err := c.do(ctx, http.MethodGet, stackPath(stackName)+"/resources", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list resources of stack %s: %w", stackName, err)
	}

	return out.Resources, nil
}

// ListResourceDetails returns full resource records, looked up by stack name
// or physical resource id and optionally narrowed to one logical id
func (c *RESTClient) ListResourceDetails(ctx context.Context, input ListResourceDetailsInput) ([]ResourceDetail, error) {
	query := url.Values{}
	query.Set("NameOrPid", input.NameOrPID)
	if input.LogicalResourceID != "" {
		query.Set("LogicalResourceId", input.LogicalResourceID)
	}

	var out struct {
		Resources []ResourceDetail `json:"resources"`
	}

	if err := c.do(ctx, http.MethodGet, "/resources/detail", query, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to describe resources for %s: %w", input.NameOrPID, err)
	}

	return out.Resources, nil
}
