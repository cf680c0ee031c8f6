/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getTemplateCmd represents the gettemplate command
var getTemplateCmd = &cobra.Command{
	Use:   "gettemplate <stack-name>",
	Short: "Fetch the template stored for a stack",
	Long: `Fetch the template the orchestration service holds for a deployed
stack and print it verbatim.

Examples:
  heatctl gettemplate mystack`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		template, err := getOperations().GetStackTemplate(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(template)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getTemplateCmd)
}
