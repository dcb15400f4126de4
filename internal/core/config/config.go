// Package config handles configuration loading and validation for wiprank.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/wiprank/internal/core/project"
)

// Output formats supported by the rank command.
const (
	FormatText     = "text"
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatJSONL    = "jsonl"
	FormatTemplate = "template"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatTable, FormatJSON, FormatJSONL, FormatTemplate}

// Config holds the application configuration.
type Config struct {
	Projects       ProjectsConfig `yaml:"projects"        toml:"projects"`
	RequiredFields []string       `yaml:"required_fields" toml:"required_fields"`
	Output         OutputConfig   `yaml:"output"          toml:"output"`
}

// ProjectsConfig controls project file discovery.
type ProjectsConfig struct {
	Dirs     []string `yaml:"dirs"     toml:"dirs"`     // directories searched when no files are given
	Patterns []string `yaml:"patterns" toml:"patterns"` // doublestar globs relative to each dir
	Exclude  []string `yaml:"exclude"  toml:"exclude"`  // doublestar globs to skip
}

// OutputConfig holds defaults for rank output.
type OutputConfig struct {
	Format   string `yaml:"format"    toml:"format"`
	Template string `yaml:"template"  toml:"template"` // row template for the template format
	HideDone bool   `yaml:"hide_done" toml:"hide_done"`
	Top      int    `yaml:"top"       toml:"top"` // 0 shows every project
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Projects: ProjectsConfig{
			Dirs:     []string{"~/projects"},
			Patterns: []string{"**/README.org"},
			Exclude:  []string{},
		},
		RequiredFields: project.DefaultOptions().RequiredFields,
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// Load reads configuration from the given path and validates it. If configPath
// is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read decodes the config file and applies defaults without validating, for
// callers that report validation issues themselves. Files ending in .toml are
// decoded as TOML, everything else as YAML.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := decode(configPath, data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	cfg.Projects.Dirs = expandDirs(cfg.Projects.Dirs)

	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if len(c.Projects.Dirs) == 0 {
		c.Projects.Dirs = defaults.Projects.Dirs
	}
	if len(c.Projects.Patterns) == 0 {
		c.Projects.Patterns = defaults.Projects.Patterns
	}
	if c.RequiredFields == nil {
		c.RequiredFields = defaults.RequiredFields
	}
	if c.Output.Format == "" {
		c.Output.Format = defaults.Output.Format
	}
}

// ProjectOptions returns the project validation options described by the config.
func (c *Config) ProjectOptions() project.Options {
	return project.Options{RequiredFields: c.RequiredFields}
}

// expandDirs replaces a leading ~ with the user's home directory.
func expandDirs(dirs []string) []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dirs
	}

	out := make([]string, len(dirs))
	for i, dir := range dirs {
		out[i] = ExpandHome(dir, home)
	}
	return out
}

// ExpandHome replaces a leading "~" path element in path with home.
func ExpandHome(path, home string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	default:
		return path
	}
}
