package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/trebuchet-org/xform/internal/domain/config"
	"github.com/trebuchet-org/xform/internal/usecase"
)

type overrideJSON struct {
	Index       int             `json:"index"`
	Name        string          `json:"name"`
	Test        []string        `json:"test"`
	Targets     config.Targets  `json:"targets,omitempty"`
	Assumptions map[string]bool `json:"assumptions,omitempty"`
	Presets     []string        `json:"presets,omitempty"`
	Plugins     []string        `json:"plugins,omitempty"`
}

// OverridesRenderer renders the static rule set
type OverridesRenderer struct {
	out  io.Writer
	json bool
}

// NewOverridesRenderer creates a new overrides renderer
func NewOverridesRenderer(out io.Writer, json bool) *OverridesRenderer {
	return &OverridesRenderer{
		out:  out,
		json: json,
	}
}

// Render writes the base configuration, the override table and the ignore set
func (r *OverridesRenderer) Render(result *usecase.ListOverridesResult) error {
	if r.json {
		return writeJSON(r.out, lo.Map(result.Overrides, func(o usecase.OverrideSummary, _ int) overrideJSON {
			return overrideJSON{
				Index:       o.Index,
				Name:        o.Label,
				Test:        o.Test,
				Targets:     o.Targets,
				Assumptions: o.Assumptions,
				Presets:     o.Presets,
				Plugins:     o.Plugins,
			}
		}))
	}

	source := result.ConfigSource
	if result.ConfigPath != "" {
		source = getRelativePath(result.ConfigPath)
	}
	fmt.Fprintf(r.out, "📦 Config source: %s\n\n", source)

	refNames := func(ref config.Ref, _ int) string { return ref.Name }
	fmt.Fprintln(r.out, headerStyle.Sprint("Base:"))
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("targets:    "), formatTargets(result.Base.Targets))
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("assumptions:"), formatAssumptions(result.Base.Assumptions))
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("presets:    "), formatList(lo.Map(result.Base.Presets, refNames)))
	fmt.Fprintf(r.out, "  %s %s\n\n", labelStyle.Sprint("plugins:    "), formatList(lo.Map(result.Base.Plugins, refNames)))

	fmt.Fprintln(r.out, headerStyle.Sprint("Overrides:"))
	if len(result.Overrides) == 0 {
		fmt.Fprintln(r.out, faintStyle.Sprint("  none"))
	} else {
		fmt.Fprintln(r.out, renderOverridesTable(result.Overrides))
	}
	fmt.Fprintln(r.out)

	fmt.Fprintf(r.out, "%s %s\n", headerStyle.Sprint("Ignore (outside test):"),
		formatList(lo.Map(result.Ignore, func(p config.IgnorePattern, _ int) string { return string(p) })))
	return nil
}

func renderOverridesTable(overrides []usecase.OverrideSummary) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingLeft:  "  ",
		PaddingRight: " ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, WidthMax: 40},
		{Number: 4, WidthMax: 40},
	})

	t.AppendHeader(table.Row{"#", "NAME", "TEST", "TARGETS", "ASSUMPTIONS", "PRESETS", "PLUGINS"})
	for _, o := range overrides {
		targets := "(inherited)"
		if o.Targets != nil {
			targets = formatTargets(o.Targets)
		}
		t.AppendRow(table.Row{
			o.Index + 1,
			overrideStyle.Sprint(o.Label),
			predicateStyle.Sprint(strings.Join(o.Test, "\n")),
			targets,
			formatAssumptions(o.Assumptions),
			formatList(o.Presets),
			strings.Join(lo.Ternary(len(o.Plugins) > 0, o.Plugins, []string{"-"}), "\n"),
		})
	}

	return t.Render()
}
