package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Resolver answers repository queries against one of two backends: the git
// binary, or go-git. Each call issues at most one external invocation and
// holds no state, so concurrent use is safe.
type Resolver struct {
	opts Options
}

// NewResolver creates a resolver for the given options.
func NewResolver(opts Options) *Resolver {
	if strings.TrimSpace(opts.GitBinary) == "" {
		opts.GitBinary = "git"
	}
	return &Resolver{opts: opts}
}

func (r *Resolver) useCLI() bool {
	switch r.opts.Backend {
	case BackendCLI:
		return true
	case BackendGoGit:
		return false
	default:
		_, err := exec.LookPath(r.opts.GitBinary)
		return err == nil
	}
}

// Toplevel returns the absolute root of the repository containing dir.
func (r *Resolver) Toplevel(ctx context.Context, dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if r.useCLI() {
		return r.toplevelCLI(ctx, dir)
	}
	return r.toplevelGoGit(dir)
}

// UserName returns the configured committer name, trimmed of surrounding
// whitespace. An unset or blank name is ErrNoResult.
func (r *Resolver) UserName(ctx context.Context, repoPath string) (string, error) {
	if r.useCLI() {
		return r.userNameCLI(ctx, repoPath)
	}
	return r.userNameGoGit(repoPath)
}

// DiffFiles returns the files changed relative to q.Base, filtered by the
// resolver's include/exclude patterns. See DiffQuery for the two modes.
func (r *Resolver) DiffFiles(ctx context.Context, q DiffQuery) ([]string, error) {
	var (
		files []string
		err   error
	)
	if r.useCLI() {
		files, err = r.diffFilesCLI(ctx, q)
	} else {
		files, err = r.diffFilesGoGit(q)
	}
	if err != nil {
		return nil, err
	}
	files = r.applyFilters(files)
	if len(files) == 0 {
		return nil, ErrNoResult
	}
	return files, nil
}

// FileDiff renders the diff of one file against q.Base.
func (r *Resolver) FileDiff(ctx context.Context, q DiffQuery, path string) (string, error) {
	if r.useCLI() {
		return r.fileDiffCLI(ctx, q, path)
	}
	return r.fileDiffGoGit(q, path)
}

// applyFilters keeps paths matching the include patterns (all, when none are
// configured) and not matching any exclude pattern. Order is preserved.
func (r *Resolver) applyFilters(paths []string) []string {
	if len(r.opts.Include) == 0 && len(r.opts.Exclude) == 0 {
		return paths
	}
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if r.matchesFilters(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

func (r *Resolver) matchesFilters(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range r.opts.Exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	if len(r.opts.Include) == 0 {
		return true
	}

	for _, pattern := range r.opts.Include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}

	return false
}
