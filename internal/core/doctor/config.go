package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/wiprank/internal/core/config"
)

// ConfigCheck reports the config file location, validation errors and warnings.
type ConfigCheck struct {
	path string
	cfg  *config.Config
}

// NewConfigCheck creates a config check for the config loaded from path.
func NewConfigCheck(path string, cfg *config.Config) *ConfigCheck {
	return &ConfigCheck{path: path, cfg: cfg}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	switch _, err := os.Stat(c.path); {
	case c.path == "":
		result.add("config file", StatusPass, "using defaults")
	case errors.Is(err, os.ErrNotExist):
		result.add(c.path, StatusPass, "not found, using defaults")
	default:
		result.add(c.path, StatusPass, "")
	}

	if err := c.cfg.ValidateDeep(c.path); err != nil {
		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				result.add(fe.Field, StatusFail, fe.Err.Error())
			}
		} else {
			result.add("validation", StatusFail, err.Error())
		}
	}

	for _, w := range c.cfg.Warnings() {
		label := w.Category
		if w.Item != "" {
			label = fmt.Sprintf("%s: %s", w.Category, w.Item)
		}
		result.add(label, StatusWarn, w.Message)
	}

	return result
}
