package config

import (
	"github.com/trebuchet-org/xform/internal/domain/config"
)

// Reserved values shared with the transform executor
const (
	DefaultNodeTarget = "14.20"
	TestFilePattern   = `/\.test\.(js|ts)/`
)

var (
	// WebBrowserTargets is the browserslist query used for packages that ship to browsers
	WebBrowserTargets = config.TargetConstraint{"defaults", "not IE 11", "not IE_Mob 11"}

	// ReservedTestDirs are excluded outside of test runs
	ReservedTestDirs = []config.IgnorePattern{"**/__tests__", "**/__mocks__", "**/__snapshots__"}
)

// DefaultIgnoreRule excludes test files and test artifact directories
func DefaultIgnoreRule() config.IgnoreRule {
	patterns := []config.IgnorePattern{TestFilePattern}
	patterns = append(patterns, ReservedTestDirs...)
	return config.IgnoreRule{Patterns: patterns}
}

// DefaultTransformConfig returns the built-in configuration for the framework
// packages. Option strings still hold version placeholders; see ExpandVersions.
func DefaultTransformConfig() *config.TransformConfig {
	return &config.TransformConfig{
		Base: config.BaseConfig{
			Targets: config.Targets{
				"node": {DefaultNodeTarget},
			},
			Assumptions: map[string]bool{
				"enumerableModuleMeta": true,
			},
			Presets: []config.Ref{
				{Name: "@babel/preset-env", Options: map[string]any{"shippedProposals": true}},
				{Name: "@babel/preset-react"},
				{Name: "@babel/typescript"},
			},
			// transform-runtime and polyfill-corejs3 are order-independent,
			// but order is still preserved in every merge.
			Plugins: []config.Ref{
				{
					Name:    "@babel/plugin-transform-runtime",
					Options: map[string]any{"version": "${" + PlaceholderRuntimeVersion + "}"},
				},
				{
					Name: "babel-plugin-polyfill-corejs3",
					Options: map[string]any{
						"method":           "usage-pure",
						"shippedProposals": true,
						"version":          "${" + PlaceholderPolyfillVersion + "}",
					},
				},
			},
		},
		Overrides: []config.OverrideRule{
			{
				Name: "structure",
				Test: []string{"./packages/structure"},
				Plugins: []config.Ref{
					{Name: "@babel/plugin-proposal-decorators", Options: map[string]any{"legacy": true}},
				},
			},
			{
				Name: "web",
				Test: []string{
					"./packages/auth/",
					"./packages/router",
					"./packages/forms/",
					"./packages/web/",
				},
				Targets: config.Targets{
					"browsers": append(config.TargetConstraint(nil), WebBrowserTargets...),
				},
				Plugins: []config.Ref{
					{
						Name: "babel-plugin-auto-import",
						Options: map[string]any{
							"declarations": []any{
								map[string]any{"default": "React", "path": "react"},
								map[string]any{"default": "PropTypes", "path": "prop-types"},
							},
						},
					},
				},
			},
		},
		Ignore:   DefaultIgnoreRule(),
		Versions: config.DefaultVersionSources(),
	}
}
