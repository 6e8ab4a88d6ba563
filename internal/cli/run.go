package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"branchout.dev/branchout/internal/actions/publish"
	"branchout.dev/branchout/internal/git"
	"branchout.dev/branchout/internal/plan"
	"branchout.dev/branchout/internal/runtime"
)

// runPublish executes the publish action for the root command
func runPublish(cmd *cobra.Command, failFast, interactive, dryRun bool) error {
	rt, err := runtime.GetContext()
	if err != nil {
		return err
	}

	// Run against the repository root regardless of the invocation directory,
	// so the plan's relative paths resolve the same way everywhere.
	git.SetWorkingDir(rt.RepoRoot)

	opts := publish.Options{
		FailFast:    failFast,
		Interactive: interactive,
		DryRun:      dryRun,
	}

	result, err := publish.Action(cmd.Context(), rt, plan.Default(), opts)
	if err != nil {
		return err
	}

	// Exit status follows the final step only; earlier failures were
	// already reported and do not fail the process.
	if result.CommitFailed() {
		return fmt.Errorf("commit step failed")
	}
	return nil
}
