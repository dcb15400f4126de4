package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/wiprank/internal/core/frontmatter"
	"github.com/hay-kot/wiprank/pkg/iojson"
)

type FieldsCmd struct {
	flags *Flags
}

// NewFieldsCmd creates a new fields command
func NewFieldsCmd(flags *Flags) *FieldsCmd {
	return &FieldsCmd{flags: flags}
}

// Register adds the fields command to the application
func (cmd *FieldsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "fields",
		Usage:     "Print the frontmatter of a file as JSON",
		UsageText: "wiprank fields FILE",
		Description: `Extracts the #+KEY: value lines that precede the first heading and prints
them as a JSON object. No validation is applied beyond line syntax, so this
is useful for checking why a file is rejected or scored unexpectedly.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *FieldsCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one FILE argument")
	}
	path := c.Args().First()

	content, err := frontmatter.ReadText(path)
	if err != nil {
		return err
	}

	fields, err := frontmatter.Extract(content)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, fields)
}
