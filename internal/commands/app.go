package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/wiprank/internal/core/config"
	"github.com/hay-kot/wiprank/internal/core/logging"
	"github.com/hay-kot/wiprank/internal/printer"
	"github.com/hay-kot/wiprank/pkg/logutils"
)

// NewApp builds the root wiprank command with every subcommand registered.
func NewApp(version string) *cli.Command {
	var logCloser func()

	flags := &Flags{}

	app := &cli.Command{
		Name:      "wiprank",
		Usage:     "Rank work-in-progress projects by what needs attention next",
		UsageText: "wiprank [global options] command [command options]",
		Description: `wiprank reads #+KEY: value frontmatter from project files and ranks the
projects by a weighted priority score built from accountability, status,
time distortion, effort, interest, urgency and recurrence.

Run 'wiprank rank FILE...' to rank specific files, or 'wiprank rank' to rank
every project found under the configured directories.
Run 'wiprank doc' for the frontmatter reference.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("WIPRANK_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("WIPRANK_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file (.yaml, .yml or .toml)",
				Sources:     cli.EnvVars("WIPRANK_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "now",
				Usage:       "reference date for recurrence (YYYY-MM-DD, defaults to today)",
				Sources:     cli.EnvVars("WIPRANK_NOW"),
				Destination: &flags.Now,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			if _, err := flags.Clock(); err != nil {
				return ctx, err
			}

			load := config.Load
			if reportsConfigIssues(c.Args().First()) {
				load = config.Read
			}

			cfg, err := load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			ctx = logging.WithConfig(ctx, flags.ConfigPath)
			logging.Component("config").Debug().Ctx(ctx).
				Strs("dirs", cfg.Projects.Dirs).
				Msg("config loaded")

			return printer.NewContext(ctx, printer.New(c.Root().ErrWriter)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return fmt.Errorf("unknown command %q. Run 'wiprank --help' for usage", c.Args().First())
			}
			_ = cli.ShowRootCommandHelp(c)
			return fmt.Errorf("no command given")
		},
	}

	app = NewRankCmd(flags).Register(app)
	app = NewScoreCmd(flags).Register(app)
	app = NewFieldsCmd(flags).Register(app)
	app = NewNewCmd(flags).Register(app)
	app = NewDocCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)
	app = NewDoctorCmd(flags).Register(app)

	return app
}

// reportsConfigIssues reports whether the named command presents config
// validation errors itself, so an invalid config must still be loaded for it.
func reportsConfigIssues(command string) bool {
	return command == "config" || command == "doctor"
}
