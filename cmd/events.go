/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/heatops/heatctl/internal/orchestration"
	"github.com/spf13/cobra"
)

// eventListCmd represents the event-list command
var eventListCmd = &cobra.Command{
	Use:     "event-list [stack-name]",
	Aliases: []string{"events_list"},
	Short:   "List stack events",
	Long: `List the event history of one stack, or of every stack when no
name is given.

Events record each resource state transition during stack operations, newest
entries last.

Examples:
  heatctl event-list mystack
  heatctl event-list`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var stackName string
		if len(args) == 1 {
			stackName = args[0]
		}

		events, err := getOperations().ListEvents(cmd.Context(), stackName)
		if err != nil {
			return err
		}

		return printResult(events, func() string {
			return orchestration.FormatEventTable(events)
		})
	},
}

func init() {
	rootCmd.AddCommand(eventListCmd)
}
