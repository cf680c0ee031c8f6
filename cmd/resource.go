/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/heatops/heatctl/internal/orchestration"
	"github.com/spf13/cobra"
)

// resourceCmd represents the resource command
var resourceCmd = &cobra.Command{
	Use:   "resource <stack-name> <logical-resource-id>",
	Short: "Describe one stack resource",
	Long: `Describe a single resource within a stack, identified by its
template-defined logical resource id.

Examples:
  heatctl resource mystack WebServer`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resource, err := getOperations().GetStackResource(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		return printResult(resource, func() string {
			return orchestration.FormatResourceDetail(resource)
		})
	},
}

// resourceListCmd represents the resource-list command
var resourceListCmd = &cobra.Command{
	Use:   "resource-list <stack-name>",
	Short: "List resource summaries of a stack",
	Long: `List summaries of all resources belonging to a stack.

Examples:
  heatctl resource-list mystack`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resources, err := getOperations().ListStackResources(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printResult(resources, func() string {
			return orchestration.FormatResourceTable(resources)
		})
	},
}

// resourceListDetailsCmd represents the resource-list-details command
var resourceListDetailsCmd = &cobra.Command{
	Use:   "resource-list-details <stack-name-or-physical-id> [logical-resource-id]",
	Short: "List full resource details",
	Long: `List full resource records, looked up by stack name or by the
physical id of any resource in the stack. An optional logical resource id
narrows the result to a single resource.

Examples:
  heatctl resource-list-details mystack
  heatctl resource-list-details mystack WebServer
  heatctl resource-list-details i-0123456789abcdef0`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := orchestration.ListResourceDetailsInput{NameOrPID: args[0]}
		if len(args) > 1 {
			input.LogicalResourceID = args[1]
		}

		resources, err := getOperations().ListResourceDetails(cmd.Context(), input)
		if err != nil {
			return err
		}

		return printResult(resources, func() string {
			return orchestration.FormatResourceDetails(resources)
		})
	},
}

func init() {
	rootCmd.AddCommand(resourceCmd)
	rootCmd.AddCommand(resourceListCmd)
	rootCmd.AddCommand(resourceListDetailsCmd)
}
