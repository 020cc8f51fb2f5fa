package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/xform/internal/usecase"
)

type versionsJSON struct {
	RuntimeVersion  string `json:"runtimeVersion"`
	PolyfillVersion string `json:"polyfillVersion"`
	Manifest        string `json:"manifest"`
	Namespace       string `json:"namespace"`
	RuntimePackage  string `json:"runtimePackage"`
	PolyfillPackage string `json:"polyfillPackage"`
}

// VersionsRenderer renders the derived version inputs
type VersionsRenderer struct {
	out  io.Writer
	json bool
}

// NewVersionsRenderer creates a new versions renderer
func NewVersionsRenderer(out io.Writer, json bool) *VersionsRenderer {
	return &VersionsRenderer{
		out:  out,
		json: json,
	}
}

// Render writes both versions and the manifest entries they came from
func (r *VersionsRenderer) Render(result *usecase.ShowVersionsResult) error {
	if r.json {
		return writeJSON(r.out, versionsJSON{
			RuntimeVersion:  result.Versions.RuntimeVersion,
			PolyfillVersion: result.Versions.PolyfillVersion,
			Manifest:        result.ManifestPath,
			Namespace:       result.Sources.Namespace,
			RuntimePackage:  result.Sources.RuntimePackage,
			PolyfillPackage: result.Sources.PolyfillPackage,
		})
	}

	fmt.Fprintf(r.out, "%s %s %s\n", labelStyle.Sprint("runtime: "), result.Versions.RuntimeVersion,
		faintStyle.Sprintf("(%s.%s)", result.Sources.Namespace, result.Sources.RuntimePackage))
	fmt.Fprintf(r.out, "%s %s %s\n", labelStyle.Sprint("polyfill:"), result.Versions.PolyfillVersion,
		faintStyle.Sprintf("(%s.%s)", result.Sources.Namespace, result.Sources.PolyfillPackage))
	fmt.Fprintf(r.out, "📁 manifest: %s\n", getRelativePath(result.ManifestPath))
	return nil
}
