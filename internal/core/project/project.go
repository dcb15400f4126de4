// Package project builds rankable project records from frontmatter files.
package project

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/wiprank/internal/core/frontmatter"
	"github.com/hay-kot/wiprank/internal/core/priority"
)

// Identifying frontmatter keys.
const (
	FieldTitle = "title"
	FieldID    = "PROJECT_ID"
)

// ErrInvalidFrontmatter is returned when a file's frontmatter cannot describe a project.
var ErrInvalidFrontmatter = errors.New("invalid frontmatter")

// Options controls how project files are validated.
type Options struct {
	// RequiredFields must be present. An empty value still counts as present.
	RequiredFields []string
}

// DefaultOptions requires a title.
func DefaultOptions() Options {
	return Options{RequiredFields: []string{FieldTitle}}
}

// Project is a single ranked unit. It is built once per file and never mutated.
type Project struct {
	Path       string               `json:"path"`
	Fields     frontmatter.Fields   `json:"fields"`
	Recurrence *priority.Recurrence `json:"recurrence,omitempty"`
}

// Title returns the project title or "Untitled".
func (p Project) Title() string {
	return p.field(FieldTitle, "Untitled")
}

// ID returns the PROJECT_ID or "No ID".
func (p Project) ID() string {
	return p.field(FieldID, "No ID")
}

// Status returns the raw STATUS value or "unknown".
func (p Project) Status() string {
	return p.field(priority.FieldStatus, "unknown")
}

// Urgency returns the raw URGENCY value or "unknown".
func (p Project) Urgency() string {
	return p.field(priority.FieldUrgency, "unknown")
}

// Done reports whether the project is marked done.
func (p Project) Done() bool {
	return p.Fields[priority.FieldStatus] == string(priority.StatusDone)
}

// Explain scores the project against now.
func (p Project) Explain(now time.Time) priority.Breakdown {
	return priority.Explain(p.Fields, p.Recurrence, now)
}

func (p Project) field(key, fallback string) string {
	if v, ok := p.Fields.Get(key); ok {
		return v
	}
	return fallback
}

// Parse builds a project from the contents of the file at path.
func Parse(path, content string, opts Options) (Project, error) {
	fields, err := frontmatter.Extract(content)
	if err != nil {
		return Project{}, fmt.Errorf("%w: %w", ErrInvalidFrontmatter, err)
	}

	if len(fields) == 0 {
		return Project{}, fmt.Errorf("%w: no frontmatter found", ErrInvalidFrontmatter)
	}

	if err := validateFields(fields, opts); err != nil {
		return Project{}, fmt.Errorf("%w: %w", ErrInvalidFrontmatter, err)
	}

	rec, err := ParseRecurrence(fields)
	if err != nil {
		return Project{}, fmt.Errorf("%w: %w", ErrInvalidFrontmatter, err)
	}

	return Project{
		Path:       path,
		Fields:     fields,
		Recurrence: rec,
	}, nil
}

// Load reads and parses the project file at path.
func Load(path string, opts Options) (Project, error) {
	content, err := frontmatter.ReadText(path)
	if err != nil {
		return Project{}, err
	}
	return Parse(path, content, opts)
}

// ParseRecurrence returns the recurrence settings of a project. It returns nil
// unless both RECURRENCE_INTERVAL and LAST_COMPLETED are present; when both are
// present the interval must be an integer and the date YYYY-MM-DD. An interval
// of zero or less is overdue as soon as the completion date has passed.
func ParseRecurrence(fields frontmatter.Fields) (*priority.Recurrence, error) {
	rawInterval, hasInterval := fields[priority.FieldRecurrenceInterval]
	rawLast, hasLast := fields[priority.FieldLastCompleted]
	if !hasInterval || !hasLast {
		return nil, nil
	}

	var (
		interval int
		last     time.Time
	)

	err := criterio.ValidateStruct(
		criterio.Run(priority.FieldRecurrenceInterval, rawInterval, func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("not an integer: %q", s)
			}
			interval = n
			return nil
		}),
		criterio.Run(priority.FieldLastCompleted, rawLast, func(s string) error {
			t, err := time.Parse(priority.DateLayout, s)
			if err != nil {
				return fmt.Errorf("not a YYYY-MM-DD date: %q", s)
			}
			last = t
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &priority.Recurrence{LastCompleted: last, IntervalDays: interval}, nil
}

func validateFields(fields frontmatter.Fields, opts Options) error {
	var errs criterio.FieldErrorsBuilder
	for _, key := range opts.RequiredFields {
		if _, ok := fields[key]; !ok {
			errs = errs.Append(key, fmt.Errorf("missing required field"))
		}
	}
	return errs.ToError()
}
