package project

import (
	"cmp"
	"slices"
	"time"

	"github.com/hay-kot/wiprank/internal/core/priority"
)

// Ranked is a project with its score breakdown and 1-based position.
type Ranked struct {
	Position  int                `json:"position"`
	Project   Project            `json:"project"`
	Breakdown priority.Breakdown `json:"breakdown"`
	Score     int                `json:"score"`
}

// Rank scores every project against now and returns them by descending score.
// Projects with equal scores keep their input order.
func Rank(projects []Project, now time.Time) []Ranked {
	ranked := make([]Ranked, len(projects))
	for i, p := range projects {
		b := p.Explain(now)
		ranked[i] = Ranked{
			Project:   p,
			Breakdown: b,
			Score:     b.Total(),
		}
	}

	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(b.Score, a.Score)
	})

	for i := range ranked {
		ranked[i].Position = i + 1
	}

	return ranked
}

// Filter returns the ranked entries kept by keep, renumbering positions.
func Filter(ranked []Ranked, keep func(Ranked) bool) []Ranked {
	out := make([]Ranked, 0, len(ranked))
	for _, r := range ranked {
		if keep(r) {
			r.Position = len(out) + 1
			out = append(out, r)
		}
	}
	return out
}
