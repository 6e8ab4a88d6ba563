package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"branchout.dev/branchout/internal/cli"
	"branchout.dev/branchout/internal/plan"
	"branchout.dev/branchout/testhelpers"
)

// sceneWithPlanFiles sets up a repo with an initial commit and every plan file present
func sceneWithPlanFiles(t *testing.T) *testhelpers.Scene {
	t.Helper()
	return testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := s.Repo.CreateChangeAndCommit("README.md", "init"); err != nil {
			return err
		}
		return s.Repo.CreateFiles(plan.Files...)
	})
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd := cli.NewRootCmd("test", "none", "unknown")
	// Explicit args keep cobra away from the go test flags in os.Args
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRootRunsPublish(t *testing.T) {
	scene := sceneWithPlanFiles(t)

	err := execute(t)
	require.NoError(t, err)

	require.True(t, scene.Repo.BranchExists(plan.BranchName))
	current, err := scene.Repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, plan.BranchName, current)

	message, err := scene.Repo.LastCommitMessage()
	require.NoError(t, err)
	require.Equal(t, plan.CommitMessage, message)
}

func TestRootSecondRunFailsOnCommitOnly(t *testing.T) {
	scene := sceneWithPlanFiles(t)

	require.NoError(t, execute(t))

	// Branch already exists and nothing is left to commit; the run finishes
	// but the exit status reflects the failed commit step
	err := execute(t)
	require.Error(t, err)
	require.Contains(t, err.Error(), "commit step failed")

	current, currentErr := scene.Repo.CurrentBranch()
	require.NoError(t, currentErr)
	require.Equal(t, plan.BranchName, current)
}

func TestRootDryRun(t *testing.T) {
	scene := sceneWithPlanFiles(t)

	err := execute(t, "--dry-run")
	require.NoError(t, err)

	require.False(t, scene.Repo.BranchExists(plan.BranchName))
}

func TestRootFailFast(t *testing.T) {
	scene := sceneWithPlanFiles(t)

	require.NoError(t, scene.Repo.CreateAndCheckoutBranch(plan.BranchName))
	require.NoError(t, scene.Repo.CheckoutBranch("main"))

	err := execute(t, "--fail-fast")
	require.Error(t, err)

	// Aborted before staging anything
	staged, stagedErr := scene.Repo.StagedFiles()
	require.NoError(t, stagedErr)
	require.Empty(t, staged)
}

func TestRootOutsideRepository(t *testing.T) {
	t.Chdir(t.TempDir())

	err := execute(t)
	require.Error(t, err)
}

func TestPlanCommand(t *testing.T) {
	_ = testhelpers.NewScene(t, nil)

	err := execute(t, "plan")
	require.NoError(t, err)
}
