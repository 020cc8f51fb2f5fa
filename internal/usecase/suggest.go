package usecase

import (
	"fmt"

	"github.com/sahilm/fuzzy"
)

// Suggest returns a "did you mean" hint for input among options, or "" when
// nothing is close.
func Suggest(input string, options []string) string {
	matches := fuzzy.Find(input, options)
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", matches[0].Str)
}
