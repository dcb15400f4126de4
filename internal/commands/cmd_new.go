package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/wiprank/internal/core/priority"
	"github.com/hay-kot/wiprank/internal/core/project"
	"github.com/hay-kot/wiprank/internal/printer"
	"github.com/hay-kot/wiprank/pkg/tmpl"
)

// DefaultProjectFile is created when new is given a directory or no path.
const DefaultProjectFile = "README.org"

const projectTemplate = `#+title: {{ .Title }}
{{- if .ID }}
#+PROJECT_ID: {{ .ID }}
{{- end }}
{{- range .Signals }}
#+{{ .Field }}: {{ .Value }}
{{- end }}
{{- if .Interval }}
#+RECURRENCE_INTERVAL: {{ .Interval }}
#+LAST_COMPLETED: {{ .LastCompleted }}
{{- end }}

* Next actions
- [ ]

* Notes
`

// projectSignal is one scored field written to a new project file.
type projectSignal struct {
	Field string
	Value string
}

// projectFile is the template data for a new project file.
type projectFile struct {
	Title         string
	ID            string
	Signals       []projectSignal
	Interval      int
	LastCompleted string
}

type NewCmd struct {
	flags *Flags

	// Command-specific flags
	title    string
	id       string
	interval int
	force    bool
	values   map[string]*string
}

// NewNewCmd creates a new new command
func NewNewCmd(flags *Flags) *NewCmd {
	cmd := &NewCmd{flags: flags, values: make(map[string]*string)}
	for _, d := range priority.Dimensions() {
		v := d.Default
		cmd.values[d.Field] = &v
	}
	return cmd
}

// Register adds the new command to the application
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "title",
			Usage:       "project title",
			Destination: &cmd.title,
		},
		&cli.StringFlag{
			Name:        "id",
			Usage:       "project identifier written as PROJECT_ID",
			Destination: &cmd.id,
		},
		&cli.IntFlag{
			Name:        "every",
			Usage:       "recurrence interval in days; LAST_COMPLETED is set to today",
			Destination: &cmd.interval,
		},
		&cli.BoolFlag{
			Name:        "force",
			Usage:       "overwrite an existing file",
			Destination: &cmd.force,
		},
	}

	for _, d := range priority.Dimensions() {
		flags = append(flags, &cli.StringFlag{
			Name:        dimensionFlag(d.Field),
			Usage:       fmt.Sprintf("%s (%s)", strings.ToLower(d.Help), strings.Join(d.Values(), ", ")),
			Value:       d.Default,
			Destination: cmd.values[d.Field],
		})
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Create a project file",
		UsageText: "wiprank new [options] [PATH]",
		Description: `Writes a new project file with frontmatter for every scored field.

PATH defaults to ./README.org; when PATH is a directory, README.org is
created inside it. Existing files are never overwritten unless --force is set.

When --title is omitted and stdin is a terminal, an interactive form prompts
for the title, identifier and every scored field.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *NewCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if cmd.title == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("--title is required when stdin is not a terminal")
		}
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	path, err := resolveProjectPath(c.Args().First())
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !cmd.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	now, err := cmd.flags.Clock()
	if err != nil {
		return err
	}

	content, err := tmpl.Render(projectTemplate, cmd.projectFile(now))
	if err != nil {
		return fmt.Errorf("render project: %w", err)
	}

	// Round trip through the parser so new never writes a file rank would reject.
	if _, err := project.Parse(path, content, cmd.flags.Config.ProjectOptions()); err != nil {
		return fmt.Errorf("generated project is invalid: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create project dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write project: %w", err)
	}

	p.Success("Project created", path)
	p.Infof("Run 'wiprank score %s' to see how it ranks", path)
	return nil
}

func (cmd *NewCmd) runForm() error {
	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Validate(validateTitle).
			Value(&cmd.title),
		huh.NewInput().
			Title("Project ID").
			Description("Optional short identifier").
			Validate(singleLine).
			Value(&cmd.id),
	}

	for _, d := range priority.Dimensions() {
		opts := make([]huh.Option[string], len(d.Options))
		for i, o := range d.Options {
			opts[i] = huh.NewOption(fmt.Sprintf("%s - %s", o.Value, o.Help), o.Value)
		}

		fields = append(fields, huh.NewSelect[string]().
			Title(d.Field).
			Description(d.Help).
			Options(opts...).
			Value(cmd.values[d.Field]))
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeCharm()).Run()
}

func (cmd *NewCmd) validate() error {
	errs := []error{
		criterio.Run("title", cmd.title, validateTitle),
		criterio.Run("id", cmd.id, singleLine),
	}

	for _, d := range priority.Dimensions() {
		errs = append(errs, criterio.Run(dimensionFlag(d.Field), *cmd.values[d.Field], func(v string) error {
			if !d.Valid(v) {
				return fmt.Errorf("invalid value %q, expected one of %s", v, strings.Join(d.Values(), ", "))
			}
			return nil
		}))
	}

	errs = append(errs, criterio.Run("every", cmd.interval, func(n int) error {
		if n < 0 {
			return fmt.Errorf("must not be negative, got %d", n)
		}
		return nil
	}))

	return criterio.ValidateStruct(errs...)
}

func (cmd *NewCmd) projectFile(now time.Time) projectFile {
	pf := projectFile{
		Title: strings.TrimSpace(cmd.title),
		ID:    strings.TrimSpace(cmd.id),
	}

	for _, d := range priority.Dimensions() {
		pf.Signals = append(pf.Signals, projectSignal{Field: d.Field, Value: *cmd.values[d.Field]})
	}

	if cmd.interval > 0 {
		pf.Interval = cmd.interval
		pf.LastCompleted = now.Format(priority.DateLayout)
	}

	return pf
}

func resolveProjectPath(arg string) (string, error) {
	if arg == "" {
		return DefaultProjectFile, nil
	}

	info, err := os.Stat(arg)
	switch {
	case err == nil && info.IsDir():
		return filepath.Join(arg, DefaultProjectFile), nil
	case err == nil, errors.Is(err, os.ErrNotExist):
		return arg, nil
	default:
		return "", fmt.Errorf("stat %s: %w", arg, err)
	}
}

// dimensionFlag converts a field name such as TIME_DISTORTION to time-distortion.
func dimensionFlag(field string) string {
	return strings.ReplaceAll(strings.ToLower(field), "_", "-")
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title is required")
	}
	return singleLine(s)
}

// singleLine rejects values that would spill into extra frontmatter lines.
func singleLine(s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return fmt.Errorf("must be a single line")
	}
	return nil
}
