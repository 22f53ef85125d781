package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// WhoamiCmd creates the whoami command.
func WhoamiCmd() *cli.Command {
	return &cli.Command{
		Name:   "whoami",
		Usage:  "Print the committer identity known to the repository",
		Flags:  commonFlags(),
		Action: whoamiAction,
	}
}

func whoamiAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	resolver, err := buildResolver(cfg)
	if err != nil {
		return err
	}
	ctx := c.Context

	// Scope to the enclosing repository when there is one; fall back to the
	// default configuration otherwise.
	repoPath, err := resolver.Toplevel(ctx, c.String("repo"))
	if err != nil {
		repoPath = ""
	}

	name, err := resolver.UserName(ctx, repoPath)
	if err != nil {
		return fmt.Errorf("user.name is not configured")
	}
	fmt.Println(name)
	return nil
}
