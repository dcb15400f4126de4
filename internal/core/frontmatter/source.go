package frontmatter

import (
	"errors"
	"fmt"
	"os"
)

// ErrSourceNotFound is returned when a project file cannot be read.
var ErrSourceNotFound = errors.New("source not found")

// ReadText returns the contents of the file at path. Missing, unreadable and
// directory paths all fail with an error wrapping ErrSourceNotFound.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrSourceNotFound, path, err)
	}

	return string(data), nil
}
