package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/wiprank/internal/core/frontmatter"
	"github.com/hay-kot/wiprank/internal/core/priority"
	"github.com/hay-kot/wiprank/internal/core/project"
	"github.com/hay-kot/wiprank/pkg/iojson"
)

type ScoreCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	fromJSON   bool
	reader     iojson.FileReader[map[string]string]
}

// NewScoreCmd creates a new score command
func NewScoreCmd(flags *Flags) *ScoreCmd {
	return &ScoreCmd{flags: flags}
}

// Register adds the score command to the application
func (cmd *ScoreCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "score",
		Aliases:   []string{"explain"},
		Usage:     "Explain the priority score of one project",
		UsageText: "wiprank score [--json] FILE\nwiprank score --from-json [-f fields.json]",
		Description: `Prints every weighted term, the recurrence state and any triggered bonuses
for a single project file.

With --from-json the frontmatter is read as a JSON object of fields (the
output of 'wiprank fields') from --file or stdin instead of a project file.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "from-json",
				Usage:       "read a JSON object of frontmatter fields instead of a project file",
				Destination: &cmd.fromJSON,
			},
			cmd.reader.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

// scoreOutput is the JSON output format for wiprank score --json.
type scoreOutput struct {
	Path      string             `json:"path,omitempty"`
	Title     string             `json:"title"`
	ID        string             `json:"id"`
	Score     int                `json:"score"`
	Base      int                `json:"base"`
	Breakdown priority.Breakdown `json:"breakdown"`
}

func (cmd *ScoreCmd) run(ctx context.Context, c *cli.Command) error {
	now, err := cmd.flags.Clock()
	if err != nil {
		return err
	}

	p, err := cmd.load(c)
	if err != nil {
		if cmd.jsonOutput {
			_ = iojson.WriteError(c.Root().Writer, "failed to load project", map[string]any{"error": err.Error()})
		}
		return err
	}

	b := p.Explain(now)
	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, scoreOutput{
			Path:      p.Path,
			Title:     p.Title(),
			ID:        p.ID(),
			Score:     b.Total(),
			Base:      b.Base(),
			Breakdown: b,
		})
	}

	return printBreakdown(out, p, b)
}

func (cmd *ScoreCmd) load(c *cli.Command) (project.Project, error) {
	if cmd.fromJSON {
		fields, err := cmd.reader.Read()
		if err != nil {
			return project.Project{}, fmt.Errorf("read fields: %w", err)
		}

		rec, err := project.ParseRecurrence(fields)
		if err != nil {
			return project.Project{}, fmt.Errorf("%w: %w", project.ErrInvalidFrontmatter, err)
		}
		return project.Project{Fields: frontmatter.Fields(fields), Recurrence: rec}, nil
	}

	if c.Args().Len() != 1 {
		return project.Project{}, fmt.Errorf("expected exactly one FILE argument")
	}

	path := c.Args().First()
	p, err := project.Load(path, cmd.flags.Config.ProjectOptions())
	if err != nil {
		return project.Project{}, fmt.Errorf("load %s: %w", path, err)
	}
	return p, nil
}

func printBreakdown(w io.Writer, p project.Project, b priority.Breakdown) error {
	_, _ = fmt.Fprintf(w, "%s (%s)\n", p.Title(), p.ID())
	if p.Path != "" {
		_, _ = fmt.Fprintln(w, p.Path)
	}
	_, _ = fmt.Fprintln(w)

	if b.Done {
		_, _ = fmt.Fprintln(w, "STATUS is done; done projects always score 0.")
		_, err := fmt.Fprintln(w, "Total: 0")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "FIELD\tVALUE\tLEVEL\tWEIGHT\tPOINTS")
	for _, t := range b.Terms {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", t.Field, t.Value, t.Level, t.Weight, t.Points())
	}
	_ = tw.Flush()

	_, _ = fmt.Fprintf(w, "\nBase: %d\n", b.Base())
	if len(b.Bonuses) > 0 {
		_, _ = fmt.Fprintln(w, "Bonuses:")
		for _, bonus := range b.Bonuses {
			_, _ = fmt.Fprintf(w, "  +%d %s: %s\n", bonus.Points, bonus.Name, bonus.Reason)
		}
	}

	_, err := fmt.Fprintf(w, "Total: %d\n", b.Total())
	return err
}
