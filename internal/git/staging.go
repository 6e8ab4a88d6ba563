package git

import (
	"context"
	"fmt"
	"strings"
)

// StageFile stages a single path for the next commit
func StageFile(ctx context.Context, path string) error {
	_, err := RunGitCommandWithContext(ctx, "add", path)
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", path, err)
	}
	return nil
}

// StageAll stages all changes including untracked files
func StageAll(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func HasStagedChanges() (bool, error) {
	output, err := RunGitCommand("diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// StagedFiles returns the paths currently staged for the next commit
func StagedFiles() ([]string, error) {
	lines, err := RunGitCommandLines("diff", "--cached", "--name-only")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}
	return lines, nil
}

// HasUntrackedFiles checks if there are untracked files
func HasUntrackedFiles() (bool, error) {
	output, err := RunGitCommand("ls-files", "--others", "--exclude-standard")
	if err != nil {
		return false, fmt.Errorf("failed to check untracked files: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}
