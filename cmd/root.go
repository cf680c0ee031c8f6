/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/heatops/heatctl/internal/config"
	logging "github.com/heatops/heatctl/internal/log"
	"github.com/spf13/cobra"
)

// cfg holds the resolved per-invocation configuration, built once in the
// persistent pre-run and immutable afterwards
var cfg = config.New()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "heatctl",
	Short: "A command-line client for template-driven stack orchestration",
	Long: `Heatctl talks to a stack-orchestration service to manage the full
lifecycle of template-defined stacks:

• Create, update and delete stacks from local or remote templates
• Inspect stack resources and event history
• Validate templates and estimate their monthly cost

Credentials are read from flags, the OS_* environment variables or an
optional ~/.heatctl/config.yaml, in that order of precedence. Templates come
from a local file, a remote URL or the object store, whichever is set first.`,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flag parsing succeeded; later failures are operational, not usage.
		cmd.SilenceUsage = true

		logging.Setup(cfg.Debug, cfg.Verbose)
		return cfg.Init()
	},
}

// helpCmd replaces cobra's built-in help command. Printing usage must never
// demand credentials, so it opts out of the root pre-run the same way the
// version command does.
var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	Long:  "Help provides help for any command in the application.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		target, _, err := rootCmd.Find(args)
		if target == nil || err != nil {
			rootCmd.Printf("Unknown help topic %#q\n", args)
			_ = rootCmd.Usage()
			return
		}
		target.InitDefaultHelpFlag()
		_ = target.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Any failure is logged with
// the command name and converted into a non-zero exit.
func Execute() {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		log.WithField("command", cmd.Name()).Error(err.Error())
		os.Exit(1)
	}
}

// RootCommand exposes the root command for documentation generation
func RootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	cfg.AddFlags(rootCmd)
	rootCmd.SetHelpCommand(helpCmd)
}
