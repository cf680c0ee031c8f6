/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package orchestration

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/xeonx/timeago"
	"gopkg.in/yaml.v3"
)

var (
	styleComplete   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleFailed     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleInProgress = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// renderStatus colours a status by outcome
func renderStatus(status StackStatus) string {
	switch {
	case status.Failed():
		return styleFailed.Render(string(status))
	case status.InProgress():
		return styleInProgress.Render(string(status))
	case status.Complete():
		return styleComplete.Render(string(status))
	default:
		return string(status)
	}
}

// formatTime formats an absolute timestamp in a human-readable format
func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}

// formatAge formats a timestamp as a relative age, e.g. "3 hours ago"
func formatAge(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return timeago.NoMax(timeago.English).Format(t)
}

// FormatStackTable renders stack summaries as a table
func FormatStackTable(stacks []*StackSummary) string {
	if len(stacks) == 0 {
		return "No stacks found\n"
	}

	var output strings.Builder
	tw := tabwriter.NewWriter(&output, 0, 0, 3, ' ', 0)

	fmt.Fprintln(tw, "NAME\tSTATUS\tCREATED\tDESCRIPTION")
	for _, stack := range stacks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			stack.Name, renderStatus(stack.Status), formatAge(stack.CreatedTime), stack.Description)
	}

	_ = tw.Flush()
	return output.String()
}

// FormatStackDescription formats one stack for display
func FormatStackDescription(stack *Stack) string {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("Stack: %s\n", stack.Name))
	output.WriteString(fmt.Sprintf("Status: %s\n", renderStatus(stack.Status)))
	if stack.StatusReason != "" {
		output.WriteString(fmt.Sprintf("Status reason: %s\n", stack.StatusReason))
	}
	if !stack.CreatedTime.IsZero() {
		output.WriteString(fmt.Sprintf("Created: %s\n", formatTime(stack.CreatedTime)))
	}
	if stack.UpdatedTime != nil {
		output.WriteString(fmt.Sprintf("Updated: %s\n", formatTime(*stack.UpdatedTime)))
	}
	if stack.ID != "" && stack.ID != stack.Name {
		output.WriteString(fmt.Sprintf("Stack ID: %s\n", stack.ID))
	}
	if stack.Description != "" {
		output.WriteString(fmt.Sprintf("Description: %s\n", stack.Description))
	}
	if stack.TimeoutMins > 0 {
		output.WriteString(fmt.Sprintf("Timeout: %d minutes\n", stack.TimeoutMins))
	}

	if len(stack.Parameters) > 0 {
		output.WriteString("\nParameters:\n")
		writeKeyValueMap(&output, stack.Parameters)
	}

	if len(stack.Outputs) > 0 {
		output.WriteString("\nOutputs:\n")
		writeKeyValueMap(&output, stack.Outputs)
	}

	return output.String()
}

// FormatStackDetails formats several stacks, separated by blank lines
func FormatStackDetails(stacks []*Stack) string {
	if len(stacks) == 0 {
		return "No stacks found\n"
	}

	descriptions := make([]string, 0, len(stacks))
	for _, stack := range stacks {
		descriptions = append(descriptions, FormatStackDescription(stack))
	}
	return strings.Join(descriptions, "\n")
}

// FormatEventTable renders stack events as a table, oldest first
func FormatEventTable(events []Event) string {
	if len(events) == 0 {
		return "No events found\n"
	}

	var output strings.Builder
	tw := tabwriter.NewWriter(&output, 0, 0, 3, ' ', 0)

	fmt.Fprintln(tw, "TIME\tSTACK\tLOGICAL ID\tSTATUS\tREASON")
	for _, event := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			formatTime(event.Timestamp), event.StackName, event.LogicalResourceID,
			renderStatus(event.ResourceStatus), event.ResourceStatusReason)
	}

	_ = tw.Flush()
	return output.String()
}

// FormatResourceTable renders resource summaries as a table
func FormatResourceTable(resources []Resource) string {
	if len(resources) == 0 {
		return "No resources found\n"
	}

	var output strings.Builder
	tw := tabwriter.NewWriter(&output, 0, 0, 3, ' ', 0)

	fmt.Fprintln(tw, "LOGICAL ID\tPHYSICAL ID\tTYPE\tSTATUS\tUPDATED")
	for _, resource := range resources {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			resource.LogicalResourceID, resource.PhysicalResourceID, resource.ResourceType,
			renderStatus(resource.Status), formatAge(resource.UpdatedTime))
	}

	_ = tw.Flush()
	return output.String()
}

// FormatResourceDetail formats one resource for display
func FormatResourceDetail(resource *ResourceDetail) string {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("Resource: %s\n", resource.LogicalResourceID))
	if resource.StackName != "" {
		output.WriteString(fmt.Sprintf("Stack: %s\n", resource.StackName))
	}
	if resource.PhysicalResourceID != "" {
		output.WriteString(fmt.Sprintf("Physical ID: %s\n", resource.PhysicalResourceID))
	}
	output.WriteString(fmt.Sprintf("Type: %s\n", resource.ResourceType))
	output.WriteString(fmt.Sprintf("Status: %s\n", renderStatus(resource.Status)))
	if resource.StatusReason != "" {
		output.WriteString(fmt.Sprintf("Status reason: %s\n", resource.StatusReason))
	}
	if !resource.UpdatedTime.IsZero() {
		output.WriteString(fmt.Sprintf("Updated: %s\n", formatTime(resource.UpdatedTime)))
	}
	if resource.Description != "" {
		output.WriteString(fmt.Sprintf("Description: %s\n", resource.Description))
	}

	if len(resource.Metadata) > 0 {
		output.WriteString("\nMetadata:\n")
		if metadata, err := yaml.Marshal(resource.Metadata); err == nil {
			for _, line := range strings.Split(strings.TrimRight(string(metadata), "\n"), "\n") {
				output.WriteString("  " + line + "\n")
			}
		}
	}

	return output.String()
}

// FormatResourceDetails formats several resources, separated by blank lines
func FormatResourceDetails(resources []ResourceDetail) string {
	if len(resources) == 0 {
		return "No resources found\n"
	}

	descriptions := make([]string, 0, len(resources))
	for i := range resources {
		descriptions = append(descriptions, FormatResourceDetail(&resources[i]))
	}
	return strings.Join(descriptions, "\n")
}

// FormatValidationResult formats the outcome of a template validation
func FormatValidationResult(result *ValidationResult) string {
	var output strings.Builder

	output.WriteString("Template is valid\n")
	if result.Description != "" {
		output.WriteString(fmt.Sprintf("Description: %s\n", result.Description))
	}

	if len(result.Parameters) > 0 {
		output.WriteString("\nParameters:\n")
		for _, parameter := range result.Parameters {
			value := parameter.DefaultValue
			if parameter.NoEcho {
				value = "****"
			}
			if value == "" {
				output.WriteString(fmt.Sprintf("  %s\n", parameter.Key))
			} else {
				output.WriteString(fmt.Sprintf("  %s: %s\n", parameter.Key, value))
			}
		}
	}

	return output.String()
}

// FormatCostEstimate formats a cost estimate result
func FormatCostEstimate(estimate *CostEstimate) string {
	return fmt.Sprintf("Estimated monthly cost: %s\n", estimate.URL)
}

// writeKeyValueMap writes a sorted map as key-value pairs with indentation
func writeKeyValueMap(output *strings.Builder, m map[string]string) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(output, "  %s: %s\n", key, m[key])
	}
}
