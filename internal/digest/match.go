package digest

import (
	"path"
	"path/filepath"
	"strings"
)

// normalize converts a candidate path or pattern to its canonical
// separator-agnostic form: forward slashes, cleaned. Matching on this form
// keeps results identical across operating systems.
func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// Excluded reports whether the candidate path matches any exclusion pattern.
// The candidate must be expressed relative to the directory the patterns were
// declared against (the consuming application's directory); the caller is
// responsible for choosing that root.
//
// Two pattern flavors by effect, not by representation:
//   - a pattern without separators excludes any path containing it as a
//     component, wherever it occurs (node_modules anywhere under the root);
//   - a pattern with separators excludes the exact path and everything
//     beneath it, component-wise (dist never matches distribution/).
func Excluded(rel string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	candidate := normalize(rel)
	components := strings.Split(candidate, "/")

	for _, pattern := range patterns {
		p := normalize(pattern)
		if !strings.Contains(p, "/") {
			for _, c := range components {
				if c == p {
					return true
				}
			}
			continue
		}
		if candidate == p || strings.HasPrefix(candidate, p+"/") {
			return true
		}
	}
	return false
}
