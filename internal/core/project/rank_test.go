package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

func mustParse(t *testing.T, content string) Project {
	t.Helper()
	p, err := Parse("test.org", content, DefaultOptions())
	require.NoError(t, err)
	return p
}

func titles(ranked []Ranked) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Project.Title()
	}
	return out
}

func TestRank_Scenario(t *testing.T) {
	a := mustParse(t, "#+title: A\n#+STATUS: stuck\n#+ACCOUNTABILITY: imminent\n#+URGENCY: now\n")
	b := mustParse(t, "#+title: B\n#+STATUS: active\n#+ACCOUNTABILITY: distant\n#+URGENCY: later\n")

	ranked := Rank([]Project{b, a}, now)
	require.Len(t, ranked, 2)

	assert.Equal(t, []string{"A", "B"}, titles(ranked))
	assert.Equal(t, 45, ranked[0].Score)
	assert.Equal(t, 1, ranked[0].Position)
	assert.Equal(t, 20, ranked[1].Score)
	assert.Equal(t, 2, ranked[1].Position)
}

func TestRank_DoneSinksToBottom(t *testing.T) {
	done := mustParse(t, "#+title: done\n#+STATUS: done\n#+ACCOUNTABILITY: imminent\n")
	open := mustParse(t, "#+title: open\n#+EFFORT: flow\n")

	ranked := Rank([]Project{done, open}, now)
	assert.Equal(t, []string{"open", "done"}, titles(ranked))
	assert.Equal(t, 0, ranked[1].Score)
	assert.True(t, ranked[1].Breakdown.Done)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	var projects []Project
	for _, title := range []string{"first", "second", "third", "fourth"} {
		projects = append(projects, mustParse(t, "#+title: "+title+"\n"))
	}

	ranked := Rank(projects, now)
	assert.Equal(t, []string{"first", "second", "third", "fourth"}, titles(ranked))
	for _, r := range ranked {
		assert.Equal(t, 15, r.Score)
	}
}

func TestRank_Descending(t *testing.T) {
	low := mustParse(t, "#+title: low\n#+EFFORT: flow\n#+TIME_DISTORTION: warp\n")
	mid := mustParse(t, "#+title: mid\n")
	high := mustParse(t, "#+title: high\n#+URGENCY: now\n#+ACCOUNTABILITY: imminent\n")

	ranked := Rank([]Project{low, mid, high}, now)
	assert.Equal(t, []string{"high", "mid", "low"}, titles(ranked))

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRank_RecurrenceUsesNow(t *testing.T) {
	p := mustParse(t, "#+title: chores\n#+RECURRENCE_INTERVAL: 7\n#+LAST_COMPLETED: 2024-03-01\n")

	overdue := Rank([]Project{p}, now)
	fresh := Rank([]Project{p}, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, fresh[0].Score+6, overdue[0].Score)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil, now))
}

func TestFilter_Renumbers(t *testing.T) {
	a := mustParse(t, "#+title: A\n#+ACCOUNTABILITY: imminent\n")
	b := mustParse(t, "#+title: B\n#+STATUS: done\n")
	c := mustParse(t, "#+title: C\n")

	ranked := Rank([]Project{a, b, c}, now)
	kept := Filter(ranked, func(r Ranked) bool { return !r.Project.Done() })

	require.Len(t, kept, 2)
	assert.Equal(t, []string{"A", "C"}, titles(kept))
	assert.Equal(t, 1, kept[0].Position)
	assert.Equal(t, 2, kept[1].Position)
}
