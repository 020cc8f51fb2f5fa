package config

import (
	"path"
	"strings"
)

// normalizeSlashes converts Windows separators so paths and predicates compare
// with one separator convention.
func normalizeSlashes(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// NormalizePath maps a file path onto the canonical form predicates are matched
// against: forward slashes, no leading "./", cleaned, and relative to root when
// the path lies under it.
func NormalizePath(root, p string) string {
	p = path.Clean(normalizeSlashes(p))
	if root != "" && isAbs(p) {
		r := path.Clean(normalizeSlashes(root))
		switch {
		case p == r:
			return "."
		case strings.HasPrefix(p, strings.TrimSuffix(r, "/")+"/"):
			return strings.TrimPrefix(p, strings.TrimSuffix(r, "/")+"/")
		}
	}
	return p
}

func isAbs(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	// C:/ style drive paths
	return len(p) >= 3 && p[1] == ':' && p[2] == '/'
}

// splitSegments splits a normalized path into its segments, dropping "." and empties
func splitSegments(p string) []string {
	var segments []string
	for i, s := range strings.Split(p, "/") {
		if s == "." || (s == "" && i > 0) {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}
