/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/heatops/heatctl/internal/prompt"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <stack-name>",
	Short: "Delete a stack",
	Long: `Delete a stack and all of its resources.

A confirmation prompt is shown unless --yes is given.

Examples:
  heatctl delete mystack
  heatctl delete mystack --yes

CAUTION: Deletion is destructive and cannot be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stackName := args[0]
		ctx := cmd.Context()

		if !cfg.AssumeYes {
			confirmed, err := prompt.ConfirmDeletion(stackName)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Printf("Aborted deletion of stack %s\n", stackName)
				return nil
			}
		}

		if err := getOperations().DeleteStack(ctx, stackName); err != nil {
			return err
		}

		fmt.Printf("Deletion of stack %s started\n", stackName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
