package git

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/utils/merkletrie"
)

// The go-git backend mirrors the CLI backend's observable behavior without
// an installed git binary. Every open/resolve failure collapses to
// ErrNoResult, matching the CLI backend's exit-status handling.

func (r *Resolver) toplevelGoGit(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open %s: %w", dir, ErrNoResult)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("worktree: %w", ErrNoResult)
	}
	root, err := filepath.Abs(wt.Filesystem.Root())
	if err != nil {
		return "", fmt.Errorf("abs: %w", ErrNoResult)
	}
	return root, nil
}

func (r *Resolver) userNameGoGit(repoPath string) (string, error) {
	var (
		cfg *gitcfg.Config
		err error
	)
	if strings.TrimSpace(repoPath) == "" {
		cfg, err = gitcfg.LoadConfig(gitcfg.GlobalScope)
	} else {
		var repo *gogit.Repository
		repo, err = gogit.PlainOpenWithOptions(repoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
		if err == nil {
			cfg, err = repo.ConfigScoped(gitcfg.GlobalScope)
		}
	}
	if err != nil {
		return "", fmt.Errorf("read config: %w", ErrNoResult)
	}
	name := strings.TrimSpace(cfg.User.Name)
	if name == "" {
		return "", ErrNoResult
	}
	return name, nil
}

func (r *Resolver) diffFilesGoGit(q DiffQuery) ([]string, error) {
	dir := q.RepoPath
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dir, ErrNoResult)
	}

	baseHash, err := repo.ResolveRevision(plumbing.Revision(q.Base))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", q.Base, ErrNoResult)
	}

	if q.Author != "" {
		return authorFilesGoGit(repo, *baseHash, q.Author)
	}
	return diffNamesGoGit(repo, *baseHash)
}

// diffNamesGoGit lists files differing between the base commit and the
// working tree: the base..HEAD tree diff first, then uncommitted paths from
// the worktree status, deduplicated in that order.
func diffNamesGoGit(repo *gogit.Repository, baseHash plumbing.Hash) ([]string, error) {
	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("head: %w", ErrNoResult)
	}

	baseTree, err := commitTree(repo, baseHash)
	if err != nil {
		return nil, err
	}
	headTree, err := commitTree(repo, headRef.Hash())
	if err != nil {
		return nil, err
	}

	changes, err := object.DiffTree(baseTree, headTree)
	if err != nil {
		return nil, fmt.Errorf("diff tree: %w", ErrNoResult)
	}

	var names []string
	for _, change := range changes {
		names = append(names, changeName(change))
	}

	dirty, err := worktreeDirtyPaths(repo)
	if err != nil {
		return nil, err
	}
	names = append(names, dirty...)

	files := dedupeFirstSeen(names)
	if len(files) == 0 {
		return nil, ErrNoResult
	}
	return files, nil
}

// authorFilesGoGit aggregates changed files over the non-merge commits in
// base..HEAD attributed to author, the library rendition of the CLI's
// `log --no-merges --author=... --diff-filter=ACMR --name-only`.
func authorFilesGoGit(repo *gogit.Repository, baseHash plumbing.Hash, author string) ([]string, error) {
	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("head: %w", ErrNoResult)
	}

	reachable, err := ancestorSet(repo, baseHash)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Log(&gogit.LogOptions{From: headRef.Hash()})
	if err != nil {
		return nil, fmt.Errorf("log: %w", ErrNoResult)
	}

	var names []string
	err = iter.ForEach(func(c *object.Commit) error {
		if _, ok := reachable[c.Hash]; ok {
			return nil
		}
		// Merges and the parentless initial commit carry no single-parent
		// change set.
		if c.NumParents() != 1 {
			return nil
		}
		if c.Author.Name != author {
			return nil
		}
		changed, err := commitFileNames(c)
		if err != nil {
			return err
		}
		names = append(names, changed...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk commits: %w", ErrNoResult)
	}

	files := dedupeFirstSeen(names)
	if len(files) == 0 {
		return nil, ErrNoResult
	}
	return files, nil
}

func (r *Resolver) fileDiffGoGit(q DiffQuery, path string) (string, error) {
	dir := q.RepoPath
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open %s: %w", dir, ErrNoResult)
	}
	baseHash, err := repo.ResolveRevision(plumbing.Revision(q.Base))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", q.Base, ErrNoResult)
	}
	headRef, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("head: %w", ErrNoResult)
	}

	baseTree, err := commitTree(repo, *baseHash)
	if err != nil {
		return "", err
	}
	headTree, err := commitTree(repo, headRef.Hash())
	if err != nil {
		return "", err
	}

	changes, err := object.DiffTree(baseTree, headTree)
	if err != nil {
		return "", fmt.Errorf("diff tree: %w", ErrNoResult)
	}
	for _, change := range changes {
		if changeName(change) != path {
			continue
		}
		patch, err := change.Patch()
		if err != nil {
			return "", fmt.Errorf("patch %s: %w", path, ErrNoResult)
		}
		return patch.String(), nil
	}
	return "", ErrNoResult
}

func commitTree(repo *gogit.Repository, hash plumbing.Hash) (*object.Tree, error) {
	commit, err := repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", hash, ErrNoResult)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("tree %s: %w", hash, ErrNoResult)
	}
	return tree, nil
}

// commitFileNames returns the added/copied/modified/renamed paths a single-
// parent commit introduces.
func commitFileNames(c *object.Commit) ([]string, error) {
	parent, err := c.Parent(0)
	if err != nil {
		return nil, err
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, err
	}
	tree, err := c.Tree()
	if err != nil {
		return nil, err
	}
	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, change := range changes {
		action, err := change.Action()
		if err != nil {
			return nil, err
		}
		if action == merkletrie.Delete {
			continue
		}
		names = append(names, change.To.Name)
	}
	return names, nil
}

// ancestorSet collects every commit reachable from hash, used to exclude
// the base side of a base..HEAD range.
func ancestorSet(repo *gogit.Repository, hash plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	iter, err := repo.Log(&gogit.LogOptions{From: hash})
	if err != nil {
		return nil, fmt.Errorf("log %s: %w", hash, ErrNoResult)
	}
	set := make(map[plumbing.Hash]struct{})
	err = iter.ForEach(func(c *object.Commit) error {
		set[c.Hash] = struct{}{}
		return nil
	})
	if err != nil && err != storer.ErrStop {
		return nil, fmt.Errorf("walk %s: %w", hash, ErrNoResult)
	}
	return set, nil
}

// worktreeDirtyPaths returns uncommitted (staged or unstaged) paths in a
// stable order; worktree status is a map, so sorting keeps runs comparable.
func worktreeDirtyPaths(repo *gogit.Repository) ([]string, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", ErrNoResult)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("status: %w", ErrNoResult)
	}
	var paths []string
	for path, st := range status {
		if st.Staging == gogit.Unmodified && st.Worktree == gogit.Unmodified {
			continue
		}
		// `diff --name-only <base>` does not list untracked files.
		if st.Staging == gogit.Untracked && st.Worktree == gogit.Untracked {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// changeName picks the surviving side of a tree change.
func changeName(change *object.Change) string {
	if change.To.Name != "" {
		return change.To.Name
	}
	return change.From.Name
}

// dedupeFirstSeen removes duplicate paths, keeping each at its first
// occurrence position.
func dedupeFirstSeen(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
