// Package cli wires the cobra command tree for branchout.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command.
// Running branchout with no subcommand executes the publish run, matching
// the zero-argument surface of the original helper.
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		failFast    bool
		interactive bool
		dryRun      bool
	)

	rootCmd := &cobra.Command{
		Use:   "branchout",
		Short: "Branchout publishes the interactive-map feature branch in one shot",
		Long: `Branchout creates the feature/interactive-map branch, stages the fixed
set of map and detail-view files, commits them with the prepared message,
and prints the command to push the branch.

Failed steps are reported and the run continues, mirroring the behavior of
the shell helper it replaces. Use --fail-fast to abort on the first failure.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, failFast, interactive, dryRun)
		},
	}

	rootCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Abort the run on the first failed step")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask for confirmation before touching the repository")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the git commands without executing them")

	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
