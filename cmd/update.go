/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/heatops/heatctl/internal/orchestration"
	"github.com/spf13/cobra"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <stack-name>",
	Short: "Update an existing stack from a template",
	Long: `Update an existing stack from a template.

The template source is selected exactly as for create: a local file first,
then a remote URL, then the object store. Parameters given with --parameters
replace the stack's current parameter values.

Examples:
  heatctl update mystack --template-file wordpress.template
  heatctl update mystack -f app.template --parameters "InstanceType=m1.xlarge"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stackName := args[0]
		ctx := cmd.Context()

		source, err := getTemplateResolver().Resolve(ctx)
		if err != nil {
			return fmt.Errorf("cannot update stack %s: %w", stackName, err)
		}

		stack, err := getOperations().UpdateStack(ctx, orchestration.UpdateStackInput{
			StackName:       stackName,
			TemplateBody:    source.Body,
			TemplateURL:     source.URL,
			Parameters:      cfg.Parameters,
			TimeoutMins:     cfg.Timeout,
			DisableRollback: !cfg.EnableRollback,
		})
		if err != nil {
			return err
		}

		return printResult(stack, func() string {
			return orchestration.FormatStackDescription(stack)
		})
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
