// Package runtime provides a context type that holds the logger and
// repository location for use throughout the application.
package runtime

import (
	"fmt"

	"branchout.dev/branchout/internal/git"
	"branchout.dev/branchout/internal/output"
)

// Context provides access to output and repository state for commands
type Context struct {
	Splog    *output.Splog
	RepoRoot string
}

// NewContext creates a new context with the given repo root
func NewContext(repoRoot string) *Context {
	return &Context{
		Splog:    output.NewSplog(),
		RepoRoot: repoRoot,
	}
}

// GetContext locates the enclosing git repository and returns a context for it
func GetContext() (*Context, error) {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return NewContext(repoRoot), nil
}
