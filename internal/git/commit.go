package git

import (
	"context"
	"fmt"

	branchouterrors "branchout.dev/branchout/internal/errors"
)

// Commit creates a commit with the given message.
// The message is passed verbatim via -m, so multi-line messages survive intact.
func Commit(ctx context.Context, message string) error {
	_, err := RunGitCommandWithContext(ctx, "commit", "-m", message)
	if err != nil {
		if staged, checkErr := HasStagedChanges(); checkErr == nil && !staged {
			return fmt.Errorf("failed to commit: %w", branchouterrors.ErrNothingStaged)
		}
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// LastCommitMessage returns the full message of the HEAD commit
func LastCommitMessage() (string, error) {
	// %B is the raw body; the trailing newline git appends is trimmed by the runner
	output, err := RunGitCommand("log", "-1", "--pretty=%B")
	if err != nil {
		return "", fmt.Errorf("failed to read commit message: %w", err)
	}
	return output, nil
}

// LastCommitFiles returns the paths touched by the HEAD commit
func LastCommitFiles() ([]string, error) {
	lines, err := RunGitCommandLines("show", "--name-only", "--pretty=format:", "HEAD")
	if err != nil {
		return nil, fmt.Errorf("failed to list commit files: %w", err)
	}
	var files []string
	for _, line := range lines {
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}
