/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package orchestration

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Event is one entry in a stack's event history
type Event struct {
	ID                   string      `json:"id"`
	StackName            string      `json:"stack_name"`
	LogicalResourceID    string      `json:"logical_resource_id"`
	PhysicalResourceID   string      `json:"physical_resource_id,omitempty"`
	ResourceType         string      `json:"resource_type,omitempty"`
	Timestamp            time.Time   `json:"event_time"`
	ResourceStatus       StackStatus `json:"resource_status"`
	ResourceStatusReason string      `json:"resource_status_reason,omitempty"`
}

// ListEvents lists the event history of one stack, or of all stacks when
// stackName is empty
func (c *RESTClient) ListEvents(ctx context.Context, stackName string) ([]Event, error) {
	path := "/events"
	if stackName != "" {
		path = stackPath(stackName) + "/events"
	}

	var out struct {
		Events []Event `json:"events"`
	}

	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		if stackName != "" {
			return nil, fmt.Errorf("failed to list events for stack %s: %w", stackName, err)
		}
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return out.Events, nil
}
