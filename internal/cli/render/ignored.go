package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/xform/internal/usecase"
)

type verdictJSON struct {
	Path      string `json:"path"`
	Ignored   bool   `json:"ignored"`
	IgnoredBy string `json:"ignoredBy,omitempty"`
}

// IgnoredRenderer renders ignore verdicts
type IgnoredRenderer struct {
	out  io.Writer
	json bool
}

// NewIgnoredRenderer creates a new ignored renderer
func NewIgnoredRenderer(out io.Writer, json bool) *IgnoredRenderer {
	return &IgnoredRenderer{
		out:  out,
		json: json,
	}
}

// Render writes one verdict per path
func (r *IgnoredRenderer) Render(result *usecase.CheckIgnoredResult) error {
	if r.json {
		verdicts := make([]verdictJSON, 0, len(result.Verdicts))
		for _, v := range result.Verdicts {
			verdicts = append(verdicts, verdictJSON{Path: v.Path, Ignored: v.Ignored, IgnoredBy: string(v.IgnoredBy)})
		}
		return writeJSON(r.out, verdicts)
	}

	for _, v := range result.Verdicts {
		if v.Ignored {
			fmt.Fprintf(r.out, "%s %s %s\n", ignoredStyle.Sprint("ignored    "), v.Path, faintStyle.Sprintf("(%s)", v.IgnoredBy))
		} else {
			fmt.Fprintf(r.out, "%s %s\n", includedStyle.Sprint("transformed"), v.Path)
		}
	}
	return nil
}
