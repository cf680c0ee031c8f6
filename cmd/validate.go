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

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a template",
	Long: `Validate a template using the orchestration service.

The template comes from the usual sources in priority order: --template-file,
--template-url, --template-object. Validation reports syntax errors and the
parameters the template accepts without deploying anything.

Examples:
  heatctl validate --template-file wordpress.template
  heatctl validate --template-url https://example.com/wp.template`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		source, err := getTemplateResolver().Resolve(ctx)
		if err != nil {
			return fmt.Errorf("cannot validate: %w", err)
		}

		result, err := getOperations().ValidateTemplate(ctx, orchestration.ValidateTemplateInput{
			TemplateBody: source.Body,
			TemplateURL:  source.URL,
			Parameters:   cfg.Parameters,
		})
		if err != nil {
			return err
		}

		return printResult(result, func() string {
			return orchestration.FormatValidationResult(result)
		})
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
