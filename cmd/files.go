package cmd

import (
	"fmt"
	"os"

	gitpkg "github.com/sim-hash/gitpick/internal/git"
	"github.com/sim-hash/gitpick/internal/output"
	"github.com/urfave/cli/v2"
)

// FilesCmd creates the files command, the picker's main listing query.
func FilesCmd() *cli.Command {
	return &cli.Command{
		Name:   "files",
		Usage:  "List files changed between the base reference and the working tree",
		Flags:  commonFlags(),
		Action: filesAction,
	}
}

func filesAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	resolver, err := buildResolver(cfg)
	if err != nil {
		return err
	}
	ctx := c.Context

	repoPath, err := resolver.Toplevel(ctx, c.String("repo"))
	if err != nil {
		output.Notice(os.Stderr, "not inside a git repository")
		return nil
	}

	base := resolveBase(c, cfg)

	author := c.String("author")
	if author == "" && (c.Bool("mine") || cfg.Picker.OnlyMine) {
		name, err := resolver.UserName(ctx, repoPath)
		if err != nil {
			output.Notice(os.Stderr, "user.name is not configured")
			return nil
		}
		author = name
	}

	files, err := resolver.DiffFiles(ctx, gitpkg.DiffQuery{
		Base:     base,
		RepoPath: repoPath,
		Author:   author,
	})
	if err != nil {
		output.Notice(os.Stderr, noChangesMessage(base, author))
		return nil
	}

	report := &output.FileListReport{
		RepoPath: repoPath,
		Base:     base,
		Author:   author,
		Files:    files,
	}
	writer := output.NewListWriter(getOutputFormat(c.String("format")))
	return writer.Write(report, output.Options{OutputPath: c.String("output")})
}

// noChangesMessage words the informational notice shown for any absent
// result, regardless of its cause.
func noChangesMessage(base, author string) string {
	if author != "" {
		return fmt.Sprintf("no files changed by %s since %s", author, base)
	}
	return fmt.Sprintf("no files changed since %s", base)
}
