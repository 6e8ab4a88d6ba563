package cli

import (
	"github.com/spf13/cobra"

	"branchout.dev/branchout/internal/output"
	"branchout.dev/branchout/internal/plan"
)

// newPlanCmd creates the plan command
func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the branch, files and commit message a run would use",
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := output.NewSplog()
			splog.Page(plan.Default().Summary())
			return nil
		},
	}
}
