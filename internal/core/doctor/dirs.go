package doctor

import (
	"context"
	"fmt"
	"os"
)

// ProjectDirsCheck verifies that configured project dirs exist and are accessible.
type ProjectDirsCheck struct {
	dirs []string
}

// NewProjectDirsCheck creates a new project directories check.
func NewProjectDirsCheck(dirs []string) *ProjectDirsCheck {
	return &ProjectDirsCheck{dirs: dirs}
}

func (c *ProjectDirsCheck) Name() string {
	return "Project Directories"
}

func (c *ProjectDirsCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if len(c.dirs) == 0 {
		result.add("projects.dirs", StatusWarn, "none configured")
		return result
	}

	for _, dir := range c.dirs {
		info, err := os.Stat(dir)
		switch {
		case os.IsNotExist(err):
			result.add(dir, StatusWarn, "directory does not exist")
		case err != nil:
			result.add(dir, StatusFail, fmt.Sprintf("inaccessible: %v", err))
		case !info.IsDir():
			result.add(dir, StatusFail, "path is not a directory")
		default:
			result.add(dir, StatusPass, "")
		}
	}

	return result
}
