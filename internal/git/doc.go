// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Branch management (create, checkout, delete)
//   - Staging and commit operations
//   - Repo discovery and remote queries
//
// This package should be the only place where direct git commands are executed.
package git
