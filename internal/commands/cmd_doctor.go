package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/wiprank/internal/core/doctor"
	"github.com/hay-kot/wiprank/pkg/iojson"
)

var (
	doctorTitleStyle = lipgloss.NewStyle().Bold(true)
	doctorMutedStyle = lipgloss.NewStyle().Faint(true)
	doctorPassStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	doctorWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	doctorFailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type DoctorCmd struct {
	flags  *Flags
	format string
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your wiprank setup",
		UsageText:   "wiprank doctor [options]",
		Description: "Checks the configuration, the project directories, and every discovered project file.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	now, err := cmd.flags.Clock()
	if err != nil {
		return err
	}

	cfg := cmd.flags.Config
	results := doctor.RunAll(ctx, []doctor.Check{
		doctor.NewConfigCheck(cmd.flags.ConfigPath, cfg),
		doctor.NewProjectDirsCheck(cfg.Projects.Dirs),
		doctor.NewProjectFilesCheck(cfg, now),
	})

	passed, warned, failed := doctor.Summary(results)

	if cmd.format == "json" {
		out := struct {
			Healthy bool            `json:"healthy"`
			Summary summaryJSON     `json:"summary"`
			Checks  []doctor.Result `json:"checks"`
		}{
			Healthy: failed == 0,
			Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
			Checks:  results,
		}
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out); err != nil {
			return err
		}
	} else {
		outputDoctorText(c.Root().ErrWriter, results, passed, warned, failed)
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func outputDoctorText(w io.Writer, results []doctor.Result, passed, warned, failed int) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, doctorTitleStyle.Render("wiprank doctor"))
	_, _ = fmt.Fprintln(w, doctorMutedStyle.Render(strings.Repeat("─", 40)))
	_, _ = fmt.Fprintln(w)

	for _, result := range results {
		_, _ = fmt.Fprintln(w, doctorTitleStyle.Render(result.Name))

		for _, item := range result.Items {
			var detail string
			if item.Detail != "" {
				detail = " " + doctorMutedStyle.Render(item.Detail)
			}

			var icon string
			switch item.Status {
			case doctor.StatusPass:
				icon = doctorPassStyle.Render("✔")
			case doctor.StatusWarn:
				icon = doctorWarnStyle.Render("●")
			case doctor.StatusFail:
				icon = doctorFailStyle.Render("✘")
			}

			_, _ = fmt.Fprintf(w, "  %s %s%s\n", icon, item.Label, detail)
		}

		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s\n",
		doctorPassStyle.Render(fmt.Sprintf("%d passed", passed)),
		doctorWarnStyle.Render(fmt.Sprintf("%d warnings", warned)),
		doctorFailStyle.Render(fmt.Sprintf("%d failed", failed)),
	)
}
