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

// estimateCmd represents the estimate-template-cost command
var estimateCmd = &cobra.Command{
	Use:   "estimate-template-cost <stack-name>",
	Short: "Estimate the monthly cost of a template",
	Long: `Ask the orchestration service for a monthly cost estimate of the
resources a template would deploy.

The template comes from the usual sources in priority order: --template-file,
--template-url, --template-object.

Examples:
  heatctl estimate-template-cost mystack --template-file wordpress.template`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stackName := args[0]
		ctx := cmd.Context()

		source, err := getTemplateResolver().Resolve(ctx)
		if err != nil {
			return fmt.Errorf("cannot estimate cost for stack %s: %w", stackName, err)
		}

		estimate, err := getOperations().EstimateTemplateCost(ctx, orchestration.EstimateTemplateCostInput{
			StackName:    stackName,
			TemplateBody: source.Body,
			TemplateURL:  source.URL,
			Parameters:   cfg.Parameters,
		})
		if err != nil {
			return err
		}

		return printResult(estimate, func() string {
			return orchestration.FormatCostEstimate(estimate)
		})
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}
