package git

import "context"

// RepositoryResolver defines the queries the picker front end needs.
// This abstraction allows for easier testing and alternative implementations.
type RepositoryResolver interface {
	// Toplevel returns the absolute root of the repository containing dir.
	Toplevel(ctx context.Context, dir string) (string, error)

	// UserName returns the committer name configured for the repository at
	// repoPath, or the default configuration when repoPath is empty.
	UserName(ctx context.Context, repoPath string) (string, error)

	// DiffFiles returns the deduplicated, ordered set of files changed
	// relative to the query's base reference. The result is never empty;
	// absence of changes is reported as ErrNoResult.
	DiffFiles(ctx context.Context, q DiffQuery) ([]string, error)

	// FileDiff renders the diff of a single file against the base reference.
	FileDiff(ctx context.Context, q DiffQuery, path string) (string, error)
}

// Compile-time interface conformance check.
var _ RepositoryResolver = (*Resolver)(nil)
