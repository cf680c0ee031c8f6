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

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <stack-name>",
	Short: "Create a stack from a template",
	Long: `Create a new stack from a template.

The template comes from the first configured source, in priority order:
a local file (--template-file), a remote URL (--template-url) or the object
store (--template-object, requires keystone authentication). Local files are
rendered with the stack parameters as template variables before submission.

Stack parameters are passed with --parameters as 'key=value;key=value'.
The stack rolls back automatically on failure when --enable-rollback is set.

Examples:
  heatctl create mystack --template-file wordpress.template
  heatctl create mystack --template-url https://example.com/wp.template
  heatctl create mystack -f app.template --parameters "KeyName=mykey;InstanceType=m1.large"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stackName := args[0]
		ctx := cmd.Context()

		source, err := getTemplateResolver().Resolve(ctx)
		if err != nil {
			return fmt.Errorf("cannot create stack %s: %w", stackName, err)
		}

		stack, err := getOperations().CreateStack(ctx, orchestration.CreateStackInput{
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
	rootCmd.AddCommand(createCmd)
}
