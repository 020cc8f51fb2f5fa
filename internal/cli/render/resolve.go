package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/xform/internal/domain/config"
	"github.com/trebuchet-org/xform/internal/usecase"
)

// resolvedFileJSON is the per-file envelope used unless a single file was requested
type resolvedFileJSON struct {
	Path      string                 `json:"path"`
	Ignored   bool                   `json:"ignored"`
	IgnoredBy string                 `json:"ignoredBy,omitempty"`
	Config    *config.ResolvedConfig `json:"config"`
}

// ResolveRenderer renders resolved configurations
type ResolveRenderer struct {
	out  io.Writer
	json bool
}

// NewResolveRenderer creates a new resolve renderer
func NewResolveRenderer(out io.Writer, json bool) *ResolveRenderer {
	return &ResolveRenderer{
		out:  out,
		json: json,
	}
}

// Render writes the resolution of every file. In JSON mode a request for one
// explicit file is written as the bare configuration object the transform
// executor consumes, or null when that file was skipped as ignored. Every other
// request is written as a list of envelopes, even when it holds one entry or none.
func (r *ResolveRenderer) Render(result *usecase.ResolveFilesResult) error {
	if r.json {
		if result.Single {
			if len(result.Files) == 0 {
				return writeJSON(r.out, nil)
			}
			return writeJSON(r.out, result.Files[0].Config)
		}
		return writeJSON(r.out, lo.Map(result.Files, func(f usecase.ResolvedFile, _ int) resolvedFileJSON {
			return resolvedFileJSON{
				Path:      f.Path,
				Ignored:   f.Ignored,
				IgnoredBy: string(f.IgnoredBy),
				Config:    f.Config,
			}
		}))
	}

	if len(result.Files) == 0 {
		fmt.Fprintln(r.out, "No files to resolve")
		return nil
	}

	fmt.Fprintf(r.out, "%s %s\n\n", headerStyle.Sprint("Environment:"), envTitle(result.Env))
	for i, f := range result.Files {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		r.renderFile(f)
	}
	return nil
}

func (r *ResolveRenderer) renderFile(f usecase.ResolvedFile) {
	line := headerStyle.Sprint(f.Path)
	if len(f.Config.MatchedOverrides) > 0 {
		line += " " + overrideStyle.Sprintf("[%s]", strings.Join(f.Config.MatchedOverrides, ", "))
	}
	if f.Ignored {
		line += " " + ignoredStyle.Sprintf("(ignored by %s)", f.IgnoredBy)
	}
	fmt.Fprintln(r.out, line)
	renderResolvedConfig(r.out, f.Config, "  ")
}

// renderResolvedConfig writes the fields of a resolved configuration one per line
func renderResolvedConfig(out io.Writer, cfg *config.ResolvedConfig, indent string) {
	refNames := func(ref config.Ref, _ int) string {
		if len(ref.Options) > 0 {
			return ref.Name + faintStyle.Sprint("*")
		}
		return ref.Name
	}
	ignore := lo.Map(cfg.Ignore, func(p config.IgnorePattern, _ int) string { return string(p) })

	fmt.Fprintf(out, "%s%s %s\n", indent, labelStyle.Sprint("targets:    "), formatTargets(cfg.Targets))
	fmt.Fprintf(out, "%s%s %s\n", indent, labelStyle.Sprint("assumptions:"), formatAssumptions(cfg.Assumptions))
	fmt.Fprintf(out, "%s%s %s\n", indent, labelStyle.Sprint("presets:    "), formatList(lo.Map(cfg.Presets, refNames)))
	fmt.Fprintf(out, "%s%s %s\n", indent, labelStyle.Sprint("plugins:    "), formatList(lo.Map(cfg.Plugins, refNames)))
	fmt.Fprintf(out, "%s%s %s\n", indent, labelStyle.Sprint("ignore:     "), formatList(ignore))
}
