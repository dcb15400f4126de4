// Package tmpl provides text template rendering with a small function set.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"
)

// padRight pads s with spaces to width runes.
func padRight(width int, s string) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(width int, s string) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= 3 {
		return string([]rune(s)[:width])
	}
	return string([]rune(s)[:width-3]) + "..."
}

func stringOrDefault(def, s string) string {
	if s != "" {
		return s
	}
	return def
}

var funcs = template.FuncMap{
	"join":    strings.Join,
	"upper":   strings.ToUpper,
	"lower":   strings.ToLower,
	"pad":     padRight,
	"trunc":   truncate,
	"default": stringOrDefault,
}

// Parse checks tmpl for syntax errors without executing it.
func Parse(tmpl string) error {
	if _, err := parse(tmpl); err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	return nil
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - join: Join string slice with separator (e.g., join .Keys ", ")
//   - upper, lower: change case
//   - pad: Right-pad to a width (e.g., pad 20 .Title)
//   - trunc: Truncate to a width with an ellipsis
//   - default: Fallback for empty strings (e.g., default "-" .ID)
func Render(tmpl string, data any) (string, error) {
	t, err := parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}

func parse(tmpl string) (*template.Template, error) {
	return template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
}
