package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/wiprank/internal/core/priority"
)

func TestFlags_Clock(t *testing.T) {
	t.Run("explicit date", func(t *testing.T) {
		f := &Flags{Now: "2024-03-15"}
		got, err := f.Clock()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("empty uses local calendar date at UTC midnight", func(t *testing.T) {
		before := time.Now()
		got, err := (&Flags{}).Clock()
		require.NoError(t, err)
		after := time.Now()

		assert.Equal(t, time.UTC, got.Location())
		assert.Equal(t, 0, got.Hour())
		assert.Equal(t, 0, got.Minute())

		y, m, d := got.Date()
		gotDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		assert.Contains(t, []time.Time{today(before), today(after)}, gotDate)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := (&Flags{Now: "15/03/2024"}).Clock()
		assert.ErrorContains(t, err, "invalid --now")
	})
}

func TestToday_CountsCalendarDays(t *testing.T) {
	last := time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)
	rec := &priority.Recurrence{LastCompleted: last, IntervalDays: 7}

	tests := []struct {
		name        string
		now         time.Time
		wantDate    time.Time
		wantElapsed int
		wantLevel   int
	}{
		{
			name:        "morning east of UTC",
			now:         time.Date(2024, time.March, 15, 8, 0, 0, 0, time.FixedZone("UTC+9", 9*60*60)),
			wantDate:    time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			wantElapsed: 7,
			wantLevel:   priority.RecurrenceOverdue,
		},
		{
			name:        "evening west of UTC",
			now:         time.Date(2024, time.March, 14, 20, 0, 0, 0, time.FixedZone("UTC-8", -8*60*60)),
			wantDate:    time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC),
			wantElapsed: 6,
			wantLevel:   priority.RecurrenceDueSoon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := today(tt.now)
			assert.Equal(t, tt.wantDate, got)
			assert.Equal(t, tt.wantElapsed, rec.ElapsedDays(got))
			assert.Equal(t, tt.wantLevel, rec.Level(got))
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	assert.Equal(t, filepath.Join("/xdg/config", "wiprank", "config.yaml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/xdg/state", "wiprank", "wiprank.log"), DefaultLogFile())
}

func TestDimensionFlag(t *testing.T) {
	assert.Equal(t, "time-distortion", dimensionFlag("TIME_DISTORTION"))
	assert.Equal(t, "urgency", dimensionFlag("URGENCY"))
}
