// Package render writes ranked projects in the supported output formats.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/hay-kot/wiprank/internal/core/config"
	"github.com/hay-kot/wiprank/internal/core/project"
	"github.com/hay-kot/wiprank/pkg/tmpl"
)

// Renderer writes a ranked list of projects.
type Renderer interface {
	Render(w io.Writer, ranked []project.Ranked) error
}

// Entry is the flattened view of a ranked project used by the JSON and
// template formats.
type Entry struct {
	Position int               `json:"position"`
	Score    int               `json:"score"`
	Title    string            `json:"title"`
	ID       string            `json:"id"`
	Status   string            `json:"status"`
	Urgency  string            `json:"urgency"`
	Done     bool              `json:"done"`
	Path     string            `json:"path"`
	Bonuses  []string          `json:"bonuses,omitempty"`
	Fields   map[string]string `json:"fields"`
}

// Entries converts ranked projects into entries, keeping order.
func Entries(ranked []project.Ranked) []Entry {
	entries := make([]Entry, len(ranked))
	for i, r := range ranked {
		var bonuses []string
		for _, b := range r.Breakdown.Bonuses {
			bonuses = append(bonuses, b.Name)
		}

		entries[i] = Entry{
			Position: r.Position,
			Score:    r.Score,
			Title:    r.Project.Title(),
			ID:       r.Project.ID(),
			Status:   r.Project.Status(),
			Urgency:  r.Project.Urgency(),
			Done:     r.Project.Done(),
			Path:     r.Project.Path,
			Bonuses:  bonuses,
			Fields:   r.Project.Fields,
		}
	}
	return entries
}

// New returns the renderer for format. rowTemplate is required for the
// template format and ignored otherwise.
func New(format, rowTemplate string) (Renderer, error) {
	switch format {
	case config.FormatText, "":
		return Text{}, nil
	case config.FormatTable:
		return Table{}, nil
	case config.FormatJSON:
		return JSON{}, nil
	case config.FormatJSONL:
		return JSONLines{}, nil
	case config.FormatTemplate:
		if strings.TrimSpace(rowTemplate) == "" {
			return nil, fmt.Errorf("format %q requires a template", format)
		}
		if err := tmpl.Parse(rowTemplate); err != nil {
			return nil, err
		}
		return Template{Row: rowTemplate}, nil
	default:
		return nil, fmt.Errorf("unknown format %q, expected one of %s", format, strings.Join(config.Formats, ", "))
	}
}
