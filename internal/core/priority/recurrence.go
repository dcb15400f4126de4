package priority

import (
	"fmt"
	"math"
	"time"
)

// Recurrence frontmatter keys. Both must be present to enable recurrence scoring.
const (
	FieldRecurrenceInterval = "RECURRENCE_INTERVAL"
	FieldLastCompleted      = "LAST_COMPLETED"

	// FieldRecurrence names the recurrence term in a Breakdown.
	FieldRecurrence = "RECURRENCE"

	// DateLayout is the accepted LAST_COMPLETED format.
	DateLayout = "2006-01-02"
)

// Recurrence levels.
const (
	RecurrenceNone    = 0
	RecurrenceDueSoon = 2
	RecurrenceOverdue = 3
)

// dueSoonRatio is the fraction of the interval after which a task is due soon.
const dueSoonRatio = 0.75

// Recurrence describes a repeating project.
type Recurrence struct {
	LastCompleted time.Time `json:"last_completed"`
	IntervalDays  int       `json:"interval_days"`
}

// ElapsedDays returns the number of whole days between LastCompleted and now,
// rounded down.
func (r *Recurrence) ElapsedDays(now time.Time) int {
	if r == nil {
		return 0
	}
	return int(math.Floor(now.Sub(r.LastCompleted).Hours() / 24))
}

// Level returns RecurrenceOverdue once the interval has elapsed, RecurrenceDueSoon
// after three quarters of it, and RecurrenceNone otherwise or when r is nil.
func (r *Recurrence) Level(now time.Time) int {
	if r == nil {
		return RecurrenceNone
	}

	elapsed := r.ElapsedDays(now)
	switch {
	case elapsed >= r.IntervalDays:
		return RecurrenceOverdue
	case float64(elapsed) >= dueSoonRatio*float64(r.IntervalDays):
		return RecurrenceDueSoon
	default:
		return RecurrenceNone
	}
}

func (r *Recurrence) String() string {
	if r == nil {
		return "none"
	}
	return fmt.Sprintf("every %dd, last %s", r.IntervalDays, r.LastCompleted.Format(DateLayout))
}
