package publish_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"branchout.dev/branchout/internal/actions/publish"
	branchouterrors "branchout.dev/branchout/internal/errors"
	"branchout.dev/branchout/internal/plan"
	"branchout.dev/branchout/internal/runtime"
	"branchout.dev/branchout/testhelpers"
)

// sceneWithPlanFiles sets up a repo with an initial commit and every plan file present
func sceneWithPlanFiles(t *testing.T, p plan.Plan) *testhelpers.Scene {
	t.Helper()
	return testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := s.Repo.CreateChangeAndCommit("README.md", "init"); err != nil {
			return err
		}
		return s.Repo.CreateFiles(p.Files...)
	})
}

func TestActionFreshRepo(t *testing.T) {
	p := plan.Default()
	scene := sceneWithPlanFiles(t, p)
	rt := runtime.NewContext(scene.Dir)

	result, err := publish.Action(context.Background(), rt, p, publish.Options{})
	require.NoError(t, err)
	require.Empty(t, result.FailedSteps())
	require.False(t, result.CommitFailed())

	// The plan branch exists and is checked out
	require.True(t, scene.Repo.BranchExists(p.Branch))
	current, err := scene.Repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, p.Branch, current)

	// The commit message is the plan literal, verbatim
	message, err := scene.Repo.LastCommitMessage()
	require.NoError(t, err)
	require.Equal(t, p.Message, message)

	// Exactly the plan's paths were committed
	files, err := scene.Repo.RunGitCommandAndGetOutput("show", "--name-only", "--pretty=format:", "HEAD")
	require.NoError(t, err)
	require.ElementsMatch(t, p.Files, strings.Split(strings.TrimSpace(files), "\n"))
}

func TestActionSecondRun(t *testing.T) {
	p := plan.Default()
	scene := sceneWithPlanFiles(t, p)
	rt := runtime.NewContext(scene.Dir)

	_, err := publish.Action(context.Background(), rt, p, publish.Options{})
	require.NoError(t, err)

	// Second run: branch creation fails, the run still continues
	result, err := publish.Action(context.Background(), rt, p, publish.Options{})
	require.NoError(t, err)

	require.Error(t, result.Steps[0].Err)
	require.ErrorIs(t, result.Steps[0].Err, branchouterrors.ErrBranchExists)
	require.Equal(t, publish.StepBranch, result.Steps[0].Name)

	// Every step was still attempted: branch + one per file + commit
	require.Len(t, result.Steps, 1+len(p.Files)+1)

	// Nothing new to commit, so the final step fails and drives the exit code
	require.True(t, result.CommitFailed())
}

func TestActionMissingFile(t *testing.T) {
	p := plan.Default()
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := s.Repo.CreateChangeAndCommit("README.md", "init"); err != nil {
			return err
		}
		// Leave the last plan file out of the working tree
		return s.Repo.CreateFiles(p.Files[:len(p.Files)-1]...)
	})
	rt := runtime.NewContext(scene.Dir)

	result, err := publish.Action(context.Background(), rt, p, publish.Options{})
	require.NoError(t, err)

	// Exactly one stage step failed, for the missing path
	failed := result.FailedSteps()
	require.Len(t, failed, 1)
	require.Equal(t, publish.StepStage, failed[0].Name)
	require.Equal(t, p.Files[len(p.Files)-1], failed[0].Path)

	// The commit step was still attempted and succeeded with the rest
	require.False(t, result.CommitFailed())
	message, err := scene.Repo.LastCommitMessage()
	require.NoError(t, err)
	require.Equal(t, p.Message, message)
}

func TestActionFailFast(t *testing.T) {
	p := plan.Default()
	scene := sceneWithPlanFiles(t, p)
	rt := runtime.NewContext(scene.Dir)

	require.NoError(t, scene.Repo.CreateAndCheckoutBranch(p.Branch))
	require.NoError(t, scene.Repo.CheckoutBranch("main"))

	result, err := publish.Action(context.Background(), rt, p, publish.Options{FailFast: true})
	require.Error(t, err)

	// The run stopped at the branch step, nothing was staged
	require.Len(t, result.Steps, 1)
	staged, stagedErr := scene.Repo.StagedFiles()
	require.NoError(t, stagedErr)
	require.Empty(t, staged)
}

func TestActionDryRun(t *testing.T) {
	p := plan.Default()
	scene := sceneWithPlanFiles(t, p)
	rt := runtime.NewContext(scene.Dir)

	result, err := publish.Action(context.Background(), rt, p, publish.Options{DryRun: true})
	require.NoError(t, err)
	require.Empty(t, result.Steps)

	// Nothing was mutated
	require.False(t, scene.Repo.BranchExists(p.Branch))
	current, err := scene.Repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "main", current)
}

func TestActionInvalidPlan(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	rt := runtime.NewContext(scene.Dir)

	bad := plan.Plan{Branch: "", Files: nil, Message: ""}
	_, err := publish.Action(context.Background(), rt, bad, publish.Options{})
	require.Error(t, err)
}
