package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/xform/internal/usecase"
)

type explainJSON struct {
	Path       string      `json:"path"`
	Normalized string      `json:"normalized"`
	Env        string      `json:"env"`
	Overrides  []matchJSON `json:"overrides"`
	Ignored    bool        `json:"ignored"`
	IgnoredBy  string      `json:"ignoredBy,omitempty"`
	Config     any         `json:"config"`
}

type matchJSON struct {
	Index     int    `json:"index"`
	Label     string `json:"label"`
	Predicate string `json:"predicate"`
}

// ExplainRenderer renders how one file's configuration was assembled
type ExplainRenderer struct {
	out  io.Writer
	json bool
}

// NewExplainRenderer creates a new explain renderer
func NewExplainRenderer(out io.Writer, json bool) *ExplainRenderer {
	return &ExplainRenderer{
		out:  out,
		json: json,
	}
}

// Render writes the explanation
func (r *ExplainRenderer) Render(result *usecase.ExplainFileResult) error {
	if r.json {
		matches := make([]matchJSON, 0, len(result.Matches))
		for _, m := range result.Matches {
			matches = append(matches, matchJSON{Index: m.Index, Label: m.Label, Predicate: m.Predicate})
		}
		return writeJSON(r.out, explainJSON{
			Path:       result.Path,
			Normalized: result.Normalized,
			Env:        string(result.Env),
			Overrides:  matches,
			Ignored:    result.Ignored,
			IgnoredBy:  string(result.IgnoredBy),
			Config:     result.Config,
		})
	}

	fmt.Fprintf(r.out, "%s %s\n", headerStyle.Sprint("File:       "), result.Path)
	if result.Normalized != result.Path {
		fmt.Fprintf(r.out, "%s %s\n", headerStyle.Sprint("Normalized: "), result.Normalized)
	}
	fmt.Fprintf(r.out, "%s %s\n\n", headerStyle.Sprint("Environment:"), envTitle(result.Env))

	fmt.Fprintln(r.out, headerStyle.Sprint("Overrides:"))
	if len(result.Matches) == 0 {
		fmt.Fprintln(r.out, faintStyle.Sprint("  none (base configuration only)"))
	}
	for _, m := range result.Matches {
		fmt.Fprintf(r.out, "  %s %s matched %s\n",
			faintStyle.Sprintf("%d.", m.Index+1),
			overrideStyle.Sprint(m.Label),
			predicateStyle.Sprint(m.Predicate))
	}
	fmt.Fprintln(r.out)

	if result.Ignored {
		fmt.Fprintln(r.out, ignoredStyle.Sprintf("Ignored by %s", result.IgnoredBy))
	} else {
		fmt.Fprintln(r.out, includedStyle.Sprint("Transformed"))
	}
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, headerStyle.Sprint("Resolved configuration:"))
	renderResolvedConfig(r.out, result.Config, "  ")
	return nil
}
