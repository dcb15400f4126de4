package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/wiprank/internal/core/config"
	"github.com/hay-kot/wiprank/internal/core/logging"
	"github.com/hay-kot/wiprank/internal/core/project"
	"github.com/hay-kot/wiprank/internal/render"
)

type RankCmd struct {
	flags *Flags

	// flags
	format   string
	template string
	top      int
	hideDone bool
	dirs     []string
}

// NewRankCmd creates a new rank command
func NewRankCmd(flags *Flags) *RankCmd {
	return &RankCmd{flags: flags}
}

// Register adds the rank command to the application
func (cmd *RankCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rank",
		Aliases:   []string{"sort"},
		Usage:     "Rank projects by priority score",
		UsageText: "wiprank rank [options] [FILE...]",
		Description: `Scores every project file and prints them from highest to lowest priority.

When no files are given, project files are discovered under the configured
projects.dirs using projects.patterns. Files that cannot be read or have
invalid frontmatter are reported on stderr and skipped.

Projects with equal scores keep the order they were given in.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"o"},
				Usage:       "output format (" + strings.Join(config.Formats, ", ") + ")",
				Destination: &cmd.format,
			},
			&cli.StringFlag{
				Name:        "template",
				Aliases:     []string{"t"},
				Usage:       "Go template rendered per project (implies --format template)",
				Destination: &cmd.template,
			},
			&cli.IntFlag{
				Name:        "top",
				Aliases:     []string{"n"},
				Usage:       "only show the N highest ranked projects (0 shows all)",
				Destination: &cmd.top,
			},
			&cli.BoolFlag{
				Name:        "hide-done",
				Usage:       "omit projects with STATUS done",
				Destination: &cmd.hideDone,
			},
			&cli.StringSliceFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "search this directory instead of the configured dirs (repeatable)",
				Destination: &cmd.dirs,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RankCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "rank")
	logger := logging.Component("rank")
	cfg := cmd.flags.Config

	now, err := cmd.flags.Clock()
	if err != nil {
		return err
	}

	renderer, err := render.New(cmd.resolveFormat(c), cmd.resolveTemplate(c))
	if err != nil {
		return err
	}

	errOut := c.Root().ErrWriter

	paths := c.Args().Slice()
	if len(paths) == 0 {
		dirs := cmd.dirs
		if len(dirs) == 0 {
			// Configured dirs may not exist yet; only an explicit --dir must.
			var missing []string
			dirs, missing = project.SplitDirs(cfg.Projects.Dirs)
			for _, dir := range missing {
				logger.Warn().Ctx(logging.WithPath(ctx, dir)).Msg("project dir not found")
				_, _ = fmt.Fprintf(errOut, "Project directory not found: %s\n", dir)
			}
		}

		paths, err = project.Discover(dirs, cfg.Projects.Patterns, cfg.Projects.Exclude)
		if err != nil {
			return fmt.Errorf("discover projects: %w", err)
		}
		logger.Debug().Ctx(ctx).Strs("dirs", dirs).Int("found", len(paths)).Msg("discovered project files")
	}

	projects, failed := project.Partition(project.LoadAll(paths, cfg.ProjectOptions()))

	for _, r := range failed {
		logger.Warn().Ctx(logging.WithPath(ctx, r.Path)).Err(r.Err).Msg("skipping project file")
		_, _ = fmt.Fprintf(errOut, "Error processing %s: %v\n", r.Path, r.Err)
	}

	logger.Info().Ctx(ctx).
		Int("loaded", len(projects)).
		Int("failed", len(failed)).
		Msg("loaded projects")

	if len(projects) == 0 {
		_, _ = fmt.Fprintln(errOut, "No projects to rank")
		return nil
	}

	ranked := project.Rank(projects, now)

	if cmd.resolveHideDone(c) {
		ranked = project.Filter(ranked, func(r project.Ranked) bool {
			return !r.Project.Done()
		})
	}

	if top := cmd.resolveTop(c); top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}

	return renderer.Render(c.Root().Writer, ranked)
}

// Command line flags override the config output section.

func (cmd *RankCmd) resolveFormat(c *cli.Command) string {
	switch {
	case c.IsSet("format"):
		return cmd.format
	case c.IsSet("template"):
		return config.FormatTemplate
	default:
		return cmd.flags.Config.Output.Format
	}
}

func (cmd *RankCmd) resolveTemplate(c *cli.Command) string {
	if c.IsSet("template") {
		return cmd.template
	}
	return cmd.flags.Config.Output.Template
}

func (cmd *RankCmd) resolveTop(c *cli.Command) int {
	if c.IsSet("top") {
		return cmd.top
	}
	return cmd.flags.Config.Output.Top
}

func (cmd *RankCmd) resolveHideDone(c *cli.Command) bool {
	if c.IsSet("hide-done") {
		return cmd.hideDone
	}
	return cmd.flags.Config.Output.HideDone
}
