// Package frontmatter extracts org-mode style "#+KEY: value" metadata from the
// head of a project file.
package frontmatter

import (
	"bufio"
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	// Marker prefixes every frontmatter line.
	Marker = "#+"
	// HeadingMarker starts the body. Extraction stops at the first heading.
	HeadingMarker = "*"
)

// ErrMalformedLine is returned when a frontmatter line has no key/value separator.
var ErrMalformedLine = errors.New("malformed frontmatter line")

// SyntaxError reports the position of a malformed frontmatter line.
type SyntaxError struct {
	Line int    // 1-based line number
	Text string // trimmed line content
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, ErrMalformedLine, e.Text)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformedLine
}

// Fields maps frontmatter keys to their trimmed raw values. Keys are case-sensitive
// and kept exactly as written; no defaults are applied.
type Fields map[string]string

// Get returns the value for key and whether it was present.
func (f Fields) Get(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

// Keys returns the field names in sorted order.
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Extract parses frontmatter lines from content. Lines are trimmed before they are
// inspected; a line starting with HeadingMarker ends the frontmatter and everything
// after it is ignored. When a key repeats, the last value wins.
//
// A Marker line without a colon fails the whole extraction with a *SyntaxError.
func Extract(content string) (Fields, error) {
	fields := Fields{}

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, Marker):
			key, value, ok := strings.Cut(line[len(Marker):], ":")
			if !ok {
				return nil, &SyntaxError{Line: lineNo, Text: line}
			}
			fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
		case strings.HasPrefix(line, HeadingMarker):
			return fields, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan frontmatter: %w", err)
	}

	return fields, nil
}
