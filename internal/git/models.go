package git

import "errors"

// ErrNoResult signals that an operation produced nothing to show: the
// directory is not inside a repository, the identity is unconfigured, the
// base reference did not resolve, or no files matched. Callers that only
// care about "result or not" treat every failure like this one.
var ErrNoResult = errors.New("no result")

// Backend selects how repository queries are executed.
type Backend int

const (
	// BackendAuto uses the git CLI when a binary is installed, go-git otherwise.
	BackendAuto Backend = iota
	// BackendCLI always invokes the git binary.
	BackendCLI
	// BackendGoGit always uses the go-git library.
	BackendGoGit
)

// String returns a string representation of the backend.
func (b Backend) String() string {
	switch b {
	case BackendCLI:
		return "cli"
	case BackendGoGit:
		return "gogit"
	default:
		return "auto"
	}
}

// Options configures a Resolver.
type Options struct {
	// GitBinary is the git executable name or path. Defaults to "git".
	GitBinary string
	Backend   Backend
	Include   []string // Glob patterns to include
	Exclude   []string // Glob patterns to exclude
}

// DiffQuery describes one changed-files lookup.
type DiffQuery struct {
	// Base is a revision expression the tool accepts (branch, tag, commit,
	// relative ref). It is passed through unvalidated; an unresolvable base
	// surfaces as ErrNoResult.
	Base string
	// RepoPath scopes the query to a repository root. Empty means the
	// process working directory.
	RepoPath string
	// Author, when non-empty, switches to commit-log aggregation over
	// Base..HEAD restricted to that author's non-merge commits.
	Author string
}
