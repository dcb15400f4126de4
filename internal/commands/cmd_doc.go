package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/wiprank/internal/core/priority"
)

type DocCmd struct {
	flags *Flags
	raw   bool
	width int
}

func NewDocCmd(flags *Flags) *DocCmd {
	return &DocCmd{flags: flags}
}

func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Show the project frontmatter guide",
		Description: `Prints the reference for every frontmatter field wiprank understands,
including accepted values, weights and bonus rules.

The guide is rendered for the terminal when stdout is a TTY and printed as
plain markdown otherwise.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without terminal rendering",
				Destination: &cmd.raw,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "word wrap width for rendered output",
				Value:       100,
				Destination: &cmd.width,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DocCmd) run(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer
	guide := frontmatterGuide()

	if cmd.raw || !isTerminal(w) {
		_, err := io.WriteString(w, guide)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(cmd.width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(guide)
	if err != nil {
		return fmt.Errorf("render guide: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func frontmatterGuide() string {
	var b strings.Builder

	b.WriteString(`# wiprank Frontmatter Guide

Project files start with ` + "`#+KEY: value`" + ` lines. Only lines before the first
heading (a line starting with ` + "`*`" + `) are read. Keys are case sensitive.

` + "```org" + `
#+title: Renew passport
#+PROJECT_ID: ADMIN-7
#+STATUS: stuck
#+ACCOUNTABILITY: looming
#+URGENCY: soon

* Next actions
` + "```" + `

## Identity

| Field | Required | Shown as when missing |
|-------|----------|-----------------------|
| ` + "`title`" + ` | yes (configurable) | Untitled |
| ` + "`PROJECT_ID`" + ` | no | No ID |

## Scored Fields

Each field maps its value to a level. The score is the sum of level x weight.
A missing field uses its default; an unrecognized value scores 0.
`)

	for _, d := range priority.Dimensions() {
		fmt.Fprintf(&b, "\n### %s\n\n%s Weight **%d**, default `%s`.\n\n", d.Field, d.Help, d.Weight, d.Default)
		b.WriteString("| Value | Level | Meaning |\n|-------|-------|---------|\n")
		for _, o := range d.Options {
			fmt.Fprintf(&b, "| `%s` | %d | %s |\n", o.Value, o.Level, o.Help)
		}
	}

	fmt.Fprintf(&b, `
## Recurrence

Set both fields to make a project recurring. Either one alone is ignored.

| Field | Format |
|-------|--------|
| `+"`%s`"+` | whole days; 0 or less is overdue once LAST_COMPLETED has passed |
| `+"`%s`"+` | `+"`YYYY-MM-DD`"+` |

Recurrence has weight **%d**. The level is 3 once the interval has fully
elapsed, 2 from 75%% of the interval, and 0 before that.
`, priority.FieldRecurrenceInterval, priority.FieldLastCompleted, priority.WeightRecurrence)

	fmt.Fprintf(&b, `
## Bonuses

| Bonus | Points | When |
|-------|--------|------|
| stuck-accountable | +%d | STATUS is stuck and ACCOUNTABILITY is looming or imminent |
| quick-win | +%d | TIME_DISTORTION is blink and EFFORT is resist or impossible |
| avoided-accountable | +%d | INTEREST is avoiding and ACCOUNTABILITY is looming or imminent |

## Done

A project with `+"`STATUS: done`"+` always scores 0 and sorts last.
`, priority.BonusStuckAccountable, priority.BonusQuickWin, priority.BonusAvoidedAccountable)

	return b.String()
}
