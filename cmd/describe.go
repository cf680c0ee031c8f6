/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/heatops/heatctl/internal/orchestration"
	"github.com/spf13/cobra"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe [stack-name]",
	Short: "Display detailed information about stacks",
	Long: `Display detailed information about one stack, or about every stack
when no name is given.

The output includes the stack status and metadata, its parameters and its
outputs, exactly as reported by the orchestration service.

Examples:
  heatctl describe mystack    # Show one stack
  heatctl describe            # Show all stacks`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if len(args) == 1 {
			stack, err := getOperations().GetStack(ctx, args[0])
			if err != nil {
				return err
			}
			return printResult(stack, func() string {
				return orchestration.FormatStackDescription(stack)
			})
		}

		stacks, err := getOperations().ListStackDetails(ctx)
		if err != nil {
			return err
		}
		return printResult(stacks, func() string {
			return orchestration.FormatStackDetails(stacks)
		})
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
