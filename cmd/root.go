package cmd

import (
	"fmt"
	"os"

	"github.com/sim-hash/gitpick/config"
	gitpkg "github.com/sim-hash/gitpick/internal/git"
	"github.com/sim-hash/gitpick/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "gitpick",
		Usage:   "Browse the files changed against a base reference",
		Version: "0.1.0",
		Commands: []*cli.Command{
			FilesCmd(),
			ShowCmd(),
			ToplevelCmd(),
			WhoamiCmd(),
		},
		// The root action falls through to `files`, so its flags live on
		// the root command too.
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		}, commonFlags()...),
		Action: defaultAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path inside the repository to operate on",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "base",
			Aliases: []string{"b"},
			Usage:   "Base reference to compare against (default: from config or HEAD)",
		},
		&cli.StringFlag{
			Name:    "author",
			Aliases: []string{"a"},
			Usage:   "Only list files changed by this author's commits",
		},
		&cli.BoolFlag{
			Name:  "mine",
			Usage: "Only list files changed by the configured identity's commits",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "Query backend (auto, cli, gogit)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	}
}

// parseBackendFlag maps the backend flag to a resolver backend.
func parseBackendFlag(s string) (gitpkg.Backend, error) {
	switch s {
	case "", "auto":
		return gitpkg.BackendAuto, nil
	case "cli", "git":
		return gitpkg.BackendCLI, nil
	case "gogit", "library":
		return gitpkg.BackendGoGit, nil
	default:
		return gitpkg.BackendAuto, fmt.Errorf("invalid backend: %s (expected auto, cli or gogit)", s)
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.Format {
	switch s {
	case "json":
		return output.FormatJSON
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply filter overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if backend := c.String("backend"); backend != "" {
		cfg.Git.Backend = backend
	}

	return cfg, nil
}

// buildResolver constructs the repository resolver from merged settings.
func buildResolver(cfg *config.Config) (*gitpkg.Resolver, error) {
	backend, err := parseBackendFlag(cfg.Git.Backend)
	if err != nil {
		return nil, err
	}
	return gitpkg.NewResolver(gitpkg.Options{
		GitBinary: cfg.Git.Binary,
		Backend:   backend,
		Include:   cfg.Filters.Include,
		Exclude:   cfg.Filters.Exclude,
	}), nil
}

// resolveBase picks the comparison reference: flag first, then config.
func resolveBase(c *cli.Context, cfg *config.Config) string {
	if base := c.String("base"); base != "" {
		return base
	}
	return cfg.Picker.Base
}

// defaultAction handles a bare invocation by listing changed files, the
// picker's primary query.
func defaultAction(c *cli.Context) error {
	return filesAction(c)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
