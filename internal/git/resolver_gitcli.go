package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// fatalPrefix is git's conventional marker for a failed command. Exit status
// is the primary failure signal; the prefix check is a secondary guard for
// output captured from streams where the status is unavailable.
const fatalPrefix = "fatal"

func (r *Resolver) toplevelCLI(ctx context.Context, dir string) (string, error) {
	out, err := r.git(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return parseToplevel(out)
}

func (r *Resolver) userNameCLI(ctx context.Context, repoPath string) (string, error) {
	out, err := r.git(ctx, repoPath, "config", "user.name")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(out)
	if name == "" {
		return "", ErrNoResult
	}
	return name, nil
}

func (r *Resolver) diffFilesCLI(ctx context.Context, q DiffQuery) ([]string, error) {
	if q.Author != "" {
		return r.authorFilesCLI(ctx, q)
	}
	out, err := r.git(ctx, q.RepoPath, "diff", "--name-only", q.Base)
	if err != nil {
		return nil, err
	}
	return parseNameOnly(out)
}

func (r *Resolver) authorFilesCLI(ctx context.Context, q DiffQuery) ([]string, error) {
	// --pretty=format: leaves an empty line per commit ahead of its file
	// names, so non-empty lines are exactly the changed paths.
	out, err := r.git(ctx, q.RepoPath,
		"log",
		"--no-merges",
		"--author="+quoteAuthor(q.Author),
		"--diff-filter=ACMR",
		"--name-only",
		"--pretty=format:",
		q.Base+"..HEAD",
	)
	if err != nil {
		return nil, err
	}
	return parseAuthorLog(out)
}

func (r *Resolver) fileDiffCLI(ctx context.Context, q DiffQuery, path string) (string, error) {
	out, err := r.git(ctx, q.RepoPath, "diff", q.Base, "--", path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", ErrNoResult
	}
	return out, nil
}

// git runs one git command scoped to dir (empty means the working directory)
// and returns its stdout. A non-zero exit collapses to ErrNoResult: tool
// missing, not a repository, and bad revision all look the same to callers.
func (r *Resolver) git(ctx context.Context, dir string, args ...string) (string, error) {
	if strings.TrimSpace(dir) != "" {
		args = append([]string{"-C", dir}, args...)
	}
	cmd := exec.CommandContext(ctx, r.opts.GitBinary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("git %s: %s: %w", args[len(args)-1], firstLine(msg), ErrNoResult)
		}
		return "", fmt.Errorf("git: %v: %w", err, ErrNoResult)
	}
	return stdout.String(), nil
}

// parseToplevel extracts the repository root from rev-parse output: the
// first line, unless it is missing or carries the fatal marker.
func parseToplevel(out string) (string, error) {
	line := firstLine(out)
	if line == "" || isFatalLine(line) {
		return "", ErrNoResult
	}
	return line, nil
}

// parseNameOnly splits diff --name-only output into one path per line, in
// the tool's native order. Empty output or a leading fatal line is no result.
func parseNameOnly(out string) ([]string, error) {
	lines := splitLines(out)
	if len(lines) == 0 {
		return nil, ErrNoResult
	}
	if isFatalLine(lines[0]) {
		return nil, ErrNoResult
	}
	return lines, nil
}

// parseAuthorLog collects file names from author-filtered log output. Blank
// lines separate commits and are dropped; duplicates keep their first-seen
// position. Any fatal line fails the whole call.
func parseAuthorLog(out string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if isFatalLine(line) {
			return nil, ErrNoResult
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		files = append(files, line)
	}
	if len(files) == 0 {
		return nil, ErrNoResult
	}
	return files, nil
}

// quoteAuthor escapes the configured name so git's --author pattern matches
// it literally. The value never passes through a shell; exec hands it to git
// as a single argument.
func quoteAuthor(name string) string {
	return regexp.QuoteMeta(name)
}

func isFatalLine(line string) bool {
	return strings.HasPrefix(line, fatalPrefix)
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// splitLines returns the non-empty lines of s, trimmed of trailing CR.
func splitLines(s string) []string {
	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
