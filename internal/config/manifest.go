package config

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/trebuchet-org/xform/internal/domain"
	"github.com/trebuchet-org/xform/internal/domain/config"
)

// ManifestFile is the package manifest the derived versions are read from
const ManifestFile = "package.json"

// LoadDerivedVersions reads the runtime and polyfill versions out of the manifest.
// The runtime version is kept verbatim, the polyfill version is truncated to major.minor.
func LoadDerivedVersions(manifestPath string, src config.VersionSources) (config.DerivedVersions, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return config.DerivedVersions{}, &domain.ConfigError{Source: manifestPath, Reason: "cannot read manifest", Err: err}
	}

	if !gjson.ValidBytes(data) {
		return config.DerivedVersions{}, &domain.ConfigError{Source: manifestPath, Reason: "manifest is not valid JSON"}
	}

	deps := gjson.GetBytes(data, gjsonKey(src.Namespace))
	if !deps.IsObject() {
		return config.DerivedVersions{}, &domain.ConfigError{
			Source: manifestPath,
			Reason: fmt.Sprintf("manifest has no %s object", src.Namespace),
		}
	}

	runtime, err := lookupDependency(manifestPath, deps, src.Namespace, src.RuntimePackage)
	if err != nil {
		return config.DerivedVersions{}, err
	}
	if err := CheckVersion(src.RuntimePackage, runtime); err != nil {
		return config.DerivedVersions{}, err
	}

	polyfill, err := lookupDependency(manifestPath, deps, src.Namespace, src.PolyfillPackage)
	if err != nil {
		return config.DerivedVersions{}, err
	}
	polyfill, err = TruncateVersion(src.PolyfillPackage, polyfill)
	if err != nil {
		return config.DerivedVersions{}, err
	}

	return config.DerivedVersions{
		RuntimeVersion:  runtime,
		PolyfillVersion: polyfill,
	}, nil
}

// lookupDependency reads one package version. Package names such as @babel/runtime
// contain gjson path syntax, so the lookup goes through the decoded object.
func lookupDependency(manifestPath string, deps gjson.Result, namespace, pkg string) (string, error) {
	value, ok := deps.Map()[pkg]
	if !ok || value.Type != gjson.String {
		return "", &domain.ConfigError{
			Source: manifestPath,
			Reason: fmt.Sprintf("%s.%s must be a version string", namespace, pkg),
		}
	}
	return value.String(), nil
}

// IsWorkspaceRoot reports whether the manifest declares workspaces
func IsWorkspaceRoot(manifestPath string) bool {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return false
	}
	return gjson.GetBytes(data, "workspaces").Exists()
}

// gjsonKey escapes the characters gjson treats as path syntax
func gjsonKey(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			out = append(out, '\\')
		}
		out = append(out, key[i])
	}
	return string(out)
}
