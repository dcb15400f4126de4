package doctor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/wiprank/internal/core/config"
	"github.com/hay-kot/wiprank/internal/core/priority"
	"github.com/hay-kot/wiprank/internal/core/project"
)

// ProjectFilesCheck discovers project files and reports the ones rank would
// skip. Files that rank but probably not as intended (unrecognized values,
// empty required fields, non-positive intervals, overdue recurrences) warn.
type ProjectFilesCheck struct {
	cfg *config.Config
	now time.Time
}

// NewProjectFilesCheck creates a project files check.
func NewProjectFilesCheck(cfg *config.Config, now time.Time) *ProjectFilesCheck {
	return &ProjectFilesCheck{cfg: cfg, now: now}
}

func (c *ProjectFilesCheck) Name() string {
	return "Project Files"
}

func (c *ProjectFilesCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	dirs, _ := project.SplitDirs(c.cfg.Projects.Dirs)
	if len(dirs) == 0 {
		result.add("discovery", StatusWarn, "no project directories to search")
		return result
	}

	paths, err := project.Discover(dirs, c.cfg.Projects.Patterns, c.cfg.Projects.Exclude)
	if err != nil {
		result.add("discovery", StatusFail, err.Error())
		return result
	}
	if len(paths) == 0 {
		result.add("discovery", StatusWarn, fmt.Sprintf("no files match %s", strings.Join(c.cfg.Projects.Patterns, ", ")))
		return result
	}

	results := project.LoadAll(paths, c.cfg.ProjectOptions())
	ok := 0
	for _, r := range results {
		if !r.OK() {
			result.add(r.Path, StatusFail, r.Err.Error())
			continue
		}

		issues := unknownValues(r.Project)
		for _, key := range c.cfg.RequiredFields {
			if strings.TrimSpace(r.Project.Fields[key]) == "" {
				issues = append(issues, fmt.Sprintf("%s is empty", key))
			}
		}
		if rec := r.Project.Recurrence; rec != nil && rec.IntervalDays < 1 {
			issues = append(issues, fmt.Sprintf("%s %d is always overdue", priority.FieldRecurrenceInterval, rec.IntervalDays))
		}
		if r.Project.Recurrence.Level(c.now) == priority.RecurrenceOverdue && !r.Project.Done() {
			issues = append(issues, fmt.Sprintf("recurrence overdue (%s)", r.Project.Recurrence))
		}
		if len(issues) > 0 {
			result.add(r.Path, StatusWarn, strings.Join(issues, "; "))
			continue
		}
		ok++
	}

	if ok > 0 {
		result.add("projects", StatusPass, fmt.Sprintf("%d of %d files healthy", ok, len(results)))
	}

	return result
}

// unknownValues lists scored fields whose value is not a recognized option.
func unknownValues(p project.Project) []string {
	var issues []string
	for _, key := range p.Fields.Keys() {
		d, ok := priority.LookupDimension(key)
		if !ok {
			continue
		}
		if v := p.Fields[key]; !d.Valid(v) {
			issues = append(issues, fmt.Sprintf("%s %q is not one of %s", key, v, strings.Join(d.Values(), ", ")))
		}
	}
	return issues
}
