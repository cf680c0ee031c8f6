/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/heatops/heatctl/internal/orchestration"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stacks",
	Long: `List summaries of all stacks known to the orchestration service.

Examples:
  heatctl list
  heatctl list --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stacks, err := getOperations().ListStacks(cmd.Context())
		if err != nil {
			return err
		}

		return printResult(stacks, func() string {
			return orchestration.FormatStackTable(stacks)
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
