package cli

import (
	"path/filepath"
	"strings"
)

// projectPaths maps command line paths, given relative to the working
// directory, onto slash-separated paths relative to the project root.
// Paths outside the project stay absolute.
func projectPaths(projectRoot string, args []string) ([]string, error) {
	out := make([]string, len(args))
	for i, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(projectRoot, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			out[i] = filepath.ToSlash(abs)
			continue
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out, nil
}
