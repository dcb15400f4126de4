package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"**/README.org"}, cfg.Projects.Patterns)
	assert.Equal(t, []string{"title"}, cfg.RequiredFields)
	assert.Equal(t, FormatText, cfg.Output.Format)
	require.Len(t, cfg.Projects.Dirs, 1)
	assert.NotContains(t, cfg.Projects.Dirs[0], "~")
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Output.Format)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
projects:
  dirs: ["/srv/projects", "/home/me/work"]
  patterns: ["**/*.org"]
  exclude: ["**/archive/**"]
required_fields: ["title", "PROJECT_ID"]
output:
  format: table
  hide_done: true
  top: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/projects", "/home/me/work"}, cfg.Projects.Dirs)
	assert.Equal(t, []string{"**/*.org"}, cfg.Projects.Patterns)
	assert.Equal(t, []string{"**/archive/**"}, cfg.Projects.Exclude)
	assert.Equal(t, []string{"title", "PROJECT_ID"}, cfg.RequiredFields)
	assert.Equal(t, FormatTable, cfg.Output.Format)
	assert.True(t, cfg.Output.HideDone)
	assert.Equal(t, 5, cfg.Output.Top)

	assert.Equal(t, []string{"title", "PROJECT_ID"}, cfg.ProjectOptions().RequiredFields)
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
required_fields = []

[projects]
dirs = ["/srv/projects"]
patterns = ["*/README.org"]

[output]
format = "json"
top = 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/projects"}, cfg.Projects.Dirs)
	assert.Equal(t, []string{"*/README.org"}, cfg.Projects.Patterns)
	assert.Empty(t, cfg.RequiredFields)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, 3, cfg.Output.Top)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "config.yml", "output:\n  top: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Output.Top)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, []string{"**/README.org"}, cfg.Projects.Patterns)
	assert.Equal(t, []string{"title"}, cfg.RequiredFields)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name:    "bad yaml",
			file:    "config.yaml",
			content: "projects: [unclosed",
			wantErr: "parse config file",
		},
		{
			name:    "bad toml",
			file:    "config.toml",
			content: "[output\nformat = 1",
			wantErr: "parse config file",
		},
		{
			name:    "unknown format",
			file:    "config.yaml",
			content: "output:\n  format: xml\n",
			wantErr: "invalid config",
		},
		{
			name:    "template format without template",
			file:    "config.yaml",
			content: "output:\n  format: template\n",
			wantErr: "invalid config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "~", want: "/home/me"},
		{in: "~/projects", want: "/home/me/projects"},
		{in: "/abs/path", want: "/abs/path"},
		{in: "relative", want: "relative"},
		{in: "~other/projects", want: "~other/projects"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in, "/home/me"))
		})
	}
}

func TestRead_SkipsValidation(t *testing.T) {
	path := writeConfig(t, "config.yaml", "output:\n  format: xml\n  top: -1\n")

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Output.Format)
	assert.Equal(t, []string{"**/README.org"}, cfg.Projects.Patterns)
	assert.Error(t, cfg.Validate())

	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestRead_ParseError(t *testing.T) {
	_, err := Read(writeConfig(t, "config.yaml", "output: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}
