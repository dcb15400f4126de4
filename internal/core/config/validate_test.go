package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Projects.Dirs = []string{t.TempDir()}
	return &cfg
}

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		fields []string
	}{
		{
			name:   "unknown format",
			mutate: func(c *Config) { c.Output.Format = "yaml" },
			fields: []string{"output.format"},
		},
		{
			name:   "negative top",
			mutate: func(c *Config) { c.Output.Top = -1 },
			fields: []string{"output.top"},
		},
		{
			name:   "template format needs template",
			mutate: func(c *Config) { c.Output.Format = FormatTemplate },
			fields: []string{"output.template"},
		},
		{
			name:   "no patterns",
			mutate: func(c *Config) { c.Projects.Patterns = nil },
			fields: []string{"projects.patterns"},
		},
		{
			name:   "blank required field",
			mutate: func(c *Config) { c.RequiredFields = []string{"title", " "} },
			fields: []string{"required_fields[1]"},
		},
		{
			name: "several at once",
			mutate: func(c *Config) {
				c.Output.Format = "csv"
				c.Output.Top = -3
			},
			fields: []string{"output.format", "output.top"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, len(tt.fields))
			for i, field := range tt.fields {
				assert.Equal(t, field, fieldErrs[i].Field)
			}
		})
	}
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	cfg.Projects.Exclude = []string{"**/archive/**"}
	cfg.Output.Format = FormatTemplate
	cfg.Output.Template = "{{ .Position }}. {{ .Title }}"

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_InvalidPatterns(t *testing.T) {
	cfg := validConfig(t)
	cfg.Projects.Patterns = []string{"**/README.org", "[unclosed"}
	cfg.Projects.Exclude = []string{"{a,b"}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "projects.patterns[1]", fieldErrs[0].Field)
	assert.Equal(t, "projects.exclude[0]", fieldErrs[1].Field)
}

func TestValidateDeep_DirIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	cfg.Projects.Dirs = append(cfg.Projects.Dirs, file)

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "projects.dirs[1]", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "not a directory")
}

func TestValidateDeep_MissingDirIsNotAnError(t *testing.T) {
	cfg := validConfig(t)
	cfg.Projects.Dirs = []string{filepath.Join(t.TempDir(), "missing")}

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_InvalidTemplate(t *testing.T) {
	cfg := validConfig(t)
	cfg.Output.Format = FormatTemplate
	cfg.Output.Template = "{{ .Title "

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "output.template", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "template error")
}

func TestValidateDeep_ConfigFile(t *testing.T) {
	cfg := validConfig(t)

	t.Run("missing file is fine", func(t *testing.T) {
		assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "config.yaml")))
	})

	t.Run("directory is rejected", func(t *testing.T) {
		err := cfg.ValidateDeep(t.TempDir())

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Equal(t, "config_file", fieldErrs[0].Field)
	})
}

func TestWarnings(t *testing.T) {
	cfg := validConfig(t)
	assert.Empty(t, cfg.Warnings())

	missing := filepath.Join(t.TempDir(), "missing")
	cfg.Projects.Dirs = append(cfg.Projects.Dirs, missing)
	cfg.RequiredFields = nil
	cfg.Output.Template = "{{ .Score }}"

	warnings := cfg.Warnings()
	require.Len(t, warnings, 3)
	assert.Equal(t, missing, warnings[0].Item)
	assert.Equal(t, "Projects", warnings[1].Category)
	assert.Equal(t, "output.template", warnings[2].Item)
}
