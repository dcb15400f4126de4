package project

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hay-kot/wiprank/internal/core/frontmatter"
)

// Discover finds project files under dirs. Each pattern is a doublestar glob
// relative to the directory; matches for any exclude pattern are skipped.
// Paths are unique and sorted within each directory, in dir order.
func Discover(dirs, patterns, exclude []string) ([]string, error) {
	for _, pattern := range slices.Concat(patterns, exclude) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}
	}

	seen := make(map[string]struct{})
	var out []string

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", frontmatter.ErrSourceNotFound, dir)
		}

		var found []string
		fsys := os.DirFS(dir)
		for _, pattern := range patterns {
			matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("glob %q in %s: %w", pattern, dir, err)
			}

			for _, m := range matches {
				skip, err := excluded(m, exclude)
				if err != nil {
					return nil, err
				}
				if skip {
					continue
				}

				path := filepath.Join(dir, filepath.FromSlash(m))
				if _, dup := seen[path]; dup {
					continue
				}
				seen[path] = struct{}{}
				found = append(found, path)
			}
		}

		slices.Sort(found)
		out = append(out, found...)
	}

	return out, nil
}

func excluded(rel string, exclude []string) (bool, error) {
	for _, pattern := range exclude {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// SplitDirs separates dirs that exist as directories from the rest, keeping order.
func SplitDirs(dirs []string) (existing, missing []string) {
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			existing = append(existing, dir)
		} else {
			missing = append(missing, dir)
		}
	}
	return existing, missing
}
