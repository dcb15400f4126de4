package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/hay-kot/wiprank/pkg/tmpl"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("output.format", c.Output.Format, isKnownFormat),
		criterio.Run("output.top", c.Output.Top, isNotNegative),
		c.validateTemplateFormat(),
		criterio.Run("projects.patterns", c.Projects.Patterns, isNotEmpty),
		c.validateRequiredFields(),
	)
}

// ValidateDeep performs comprehensive validation of the configuration including
// glob syntax, template syntax, and directory accessibility. The configPath
// argument specifies the config file location to validate (empty string skips
// the config file check). This calls Validate() first for basic structural
// validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validatePatterns(),
		c.validateDirs(),
		c.validateTemplate(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	for _, dir := range c.Projects.Dirs {
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			warnings = append(warnings, ValidationWarning{
				Category: "Projects",
				Item:     dir,
				Message:  "directory does not exist; rank without arguments will fail",
			})
		}
	}

	if len(c.RequiredFields) == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Projects",
			Message:  "no required fields; projects without a title are listed as Untitled",
		})
	}

	if c.Output.Template != "" && c.Output.Format != FormatTemplate {
		warnings = append(warnings, ValidationWarning{
			Category: "Output",
			Item:     "output.template",
			Message:  fmt.Sprintf("template is ignored unless output.format is %q", FormatTemplate),
		})
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func (c *Config) validateTemplateFormat() error {
	if c.Output.Format == FormatTemplate && strings.TrimSpace(c.Output.Template) == "" {
		return criterio.NewFieldErrors("output.template", fmt.Errorf("required when format is %q", FormatTemplate))
	}
	return nil
}

func (c *Config) validateRequiredFields() error {
	var errs criterio.FieldErrorsBuilder
	for i, field := range c.RequiredFields {
		if strings.TrimSpace(field) == "" {
			errs = errs.Append(fmt.Sprintf("required_fields[%d]", i), fmt.Errorf("field name cannot be empty"))
		}
	}
	return errs.ToError()
}

// validatePatterns checks discovery and exclude globs are valid doublestar patterns.
func (c *Config) validatePatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.Projects.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("projects.patterns[%d]", i), fmt.Errorf("invalid glob %q", pattern))
		}
	}
	for i, pattern := range c.Projects.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("projects.exclude[%d]", i), fmt.Errorf("invalid glob %q", pattern))
		}
	}
	return errs.ToError()
}

// validateDirs checks that every existing project dir is a directory. Missing
// dirs are reported by Warnings.
func (c *Config) validateDirs() error {
	var errs criterio.FieldErrorsBuilder
	for i, dir := range c.Projects.Dirs {
		info, err := os.Stat(dir)
		switch {
		case errors.Is(err, os.ErrNotExist):
			continue
		case err != nil:
			errs = errs.Append(fmt.Sprintf("projects.dirs[%d]", i), fmt.Errorf("cannot access: %w", err))
		case !info.IsDir():
			errs = errs.Append(fmt.Sprintf("projects.dirs[%d]", i), fmt.Errorf("%s is not a directory", dir))
		}
	}
	return errs.ToError()
}

func (c *Config) validateTemplate() error {
	if c.Output.Template == "" {
		return nil
	}
	if err := tmpl.Parse(c.Output.Template); err != nil {
		return criterio.NewFieldErrors("output.template", fmt.Errorf("template error: %w", err))
	}
	return nil
}

func isKnownFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("unknown format %q, expected one of %s", format, strings.Join(Formats, ", "))
	}
	return nil
}

func isNotNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("must not be negative, got %d", n)
	}
	return nil
}

func isNotEmpty(patterns []string) error {
	if len(patterns) == 0 {
		return fmt.Errorf("at least one pattern is required")
	}
	return nil
}
