package render

import (
	"io"

	"github.com/hay-kot/wiprank/internal/core/project"
	"github.com/hay-kot/wiprank/pkg/iojson"
)

// JSON renders an indented array of entries.
type JSON struct{}

func (JSON) Render(w io.Writer, ranked []project.Ranked) error {
	return iojson.WriteWith(w, io.Discard, Entries(ranked))
}

// JSONLines renders one compact entry per line.
type JSONLines struct{}

func (JSONLines) Render(w io.Writer, ranked []project.Ranked) error {
	for _, e := range Entries(ranked) {
		if err := iojson.WriteLine(w, e); err != nil {
			return err
		}
	}
	return nil
}
