package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"branchout.dev/branchout/internal/git"
	"branchout.dev/branchout/testhelpers"
)

func TestCreateAndCheckoutBranch(t *testing.T) {
	t.Run("creates and switches to the branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init.txt", "init")
		})

		err := git.CreateAndCheckoutBranch(context.Background(), "feature/test")
		require.NoError(t, err)

		current, err := scene.Repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "feature/test", current)
	})

	t.Run("fails when the branch already exists", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init.txt", "init")
		})

		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature/test"))
		require.NoError(t, scene.Repo.CheckoutBranch("main"))

		err := git.CreateAndCheckoutBranch(context.Background(), "feature/test")
		require.Error(t, err)

		// Failure leaves HEAD where it was
		current, err := scene.Repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "main", current)
	})
}

func TestBranchExists(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("init.txt", "init")
	})

	exists, err := git.BranchExists("feature/test")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature/test"))

	exists, err = git.BranchExists("feature/test")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestGetCurrentBranch(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("init.txt", "init")
	})

	current, err := git.GetCurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "main", current)

	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("other"))

	current, err = git.GetCurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "other", current)
}
