package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/hay-kot/wiprank/internal/core/project"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	doneStyle   = cellStyle.Faint(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Table columns.
const (
	colPosition = iota
	colScore
	colTitle
	colID
	colStatus
	colUrgency
)

// Table renders a bordered table.
type Table struct{}

func (Table) Render(w io.Writer, ranked []project.Ranked) error {
	rows := make([][]string, len(ranked))
	for i, r := range ranked {
		rows[i] = []string{
			strconv.Itoa(r.Position),
			strconv.Itoa(r.Score),
			r.Project.Title(),
			r.Project.ID(),
			r.Project.Status(),
			r.Project.Urgency(),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("#", "SCORE", "TITLE", "ID", "STATUS", "URGENCY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case ranked[row].Project.Done():
				return doneStyle
			case col == colPosition || col == colScore:
				return numberStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.String())
	return err
}
