package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/hay-kot/wiprank/internal/core/project"
)

// Text is the plain listing format.
type Text struct{}

func (Text) Render(w io.Writer, ranked []project.Ranked) error {
	var b strings.Builder

	b.WriteString("\nProjects in priority order:\n")
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n")

	for _, r := range ranked {
		p := r.Project
		fmt.Fprintf(&b, "%d. %s (%s)\n", r.Position, p.Title(), p.ID())
		fmt.Fprintf(&b, "   Status: %s\n", p.Status())
		fmt.Fprintf(&b, "   Urgency: %s\n", p.Urgency())
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
