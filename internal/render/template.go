package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/hay-kot/wiprank/internal/core/project"
	"github.com/hay-kot/wiprank/pkg/tmpl"
)

// Template renders each entry with a Go text template. A trailing newline is
// added when the row output lacks one.
type Template struct {
	Row string
}

func (t Template) Render(w io.Writer, ranked []project.Ranked) error {
	for _, e := range Entries(ranked) {
		out, err := tmpl.Render(t.Row, e)
		if err != nil {
			return fmt.Errorf("render %s: %w", e.Path, err)
		}
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	return nil
}
