package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// ToplevelCmd creates the toplevel command.
func ToplevelCmd() *cli.Command {
	return &cli.Command{
		Name:   "toplevel",
		Usage:  "Print the absolute root of the enclosing repository",
		Flags:  commonFlags(),
		Action: toplevelAction,
	}
}

func toplevelAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	resolver, err := buildResolver(cfg)
	if err != nil {
		return err
	}

	top, err := resolver.Toplevel(c.Context, c.String("repo"))
	if err != nil {
		return fmt.Errorf("not inside a git repository")
	}
	fmt.Println(top)
	return nil
}
