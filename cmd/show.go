package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	gitpkg "github.com/sim-hash/gitpick/internal/git"
	"github.com/sim-hash/gitpick/internal/output"
	"github.com/urfave/cli/v2"
)

// ShowCmd creates the show command: the per-selection diff view.
func ShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Render the diff of one file against the base reference",
		ArgsUsage: "<path>",
		Flags:     commonFlags(),
		Action:    showAction,
	}
}

func showAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: gitpick show <path>")
	}
	path := c.Args().First()

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
	diff, err := resolver.FileDiff(ctx, gitpkg.DiffQuery{Base: base, RepoPath: repoPath}, path)
	if err != nil {
		output.Notice(os.Stderr, fmt.Sprintf("no diff for %s against %s", path, base))
		return nil
	}
	return output.RenderDiff(color.Output, diff)
}
