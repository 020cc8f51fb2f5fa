package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/xform/internal/domain"
	"github.com/trebuchet-org/xform/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// TransformConfigFiles are looked up in the project root, in order
var TransformConfigFiles = []string{"transform.toml", "transform.yaml", "transform.yml"}

// refRaw accepts either a bare name or a {name, options} table
type refRaw struct {
	Name    string         `toml:"name" yaml:"name"`
	Options map[string]any `toml:"options" yaml:"options"`
}

func (r *refRaw) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		r.Name = v
		return nil
	case map[string]any:
		name, ok := v["name"].(string)
		if !ok {
			return fmt.Errorf("reference table needs a string name")
		}
		r.Name = name
		if opts, ok := v["options"]; ok {
			m, ok := opts.(map[string]any)
			if !ok {
				return fmt.Errorf("options for %s must be a table", name)
			}
			r.Options = m
		}
		for key := range v {
			if key != "name" && key != "options" {
				return fmt.Errorf("unknown key %q in reference %s", key, name)
			}
		}
		return nil
	default:
		return fmt.Errorf("reference must be a string or a table, got %T", data)
	}
}

func (r *refRaw) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&r.Name)
	}
	type plain refRaw
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = refRaw(p)
	return nil
}

type overrideRaw struct {
	Name        string          `toml:"name" yaml:"name"`
	Test        []string        `toml:"test" yaml:"test"`
	Targets     targetsRaw      `toml:"targets" yaml:"targets"`
	Assumptions map[string]bool `toml:"assumptions" yaml:"assumptions"`
	Presets     []refRaw        `toml:"presets" yaml:"presets"`
	Plugins     []refRaw        `toml:"plugins" yaml:"plugins"`
}

type ignoreRaw struct {
	Patterns []string `toml:"patterns" yaml:"patterns"`
}

// transformFileRaw is the on-disk layout shared by transform.toml and transform.yaml
type transformFileRaw struct {
	Versions    *config.VersionSources `toml:"versions" yaml:"versions"`
	Targets     targetsRaw             `toml:"targets" yaml:"targets"`
	Assumptions map[string]bool        `toml:"assumptions" yaml:"assumptions"`
	Presets     []refRaw               `toml:"presets" yaml:"presets"`
	Plugins     []refRaw               `toml:"plugins" yaml:"plugins"`
	Overrides   []overrideRaw          `toml:"overrides" yaml:"overrides"`
	Ignore      *ignoreRaw             `toml:"ignore" yaml:"ignore"`
}

// FindTransformConfig returns the first transform config file in projectRoot,
// or "" when the project has none.
func FindTransformConfig(projectRoot string) string {
	for _, name := range TransformConfigFiles {
		path := filepath.Join(projectRoot, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadTransformConfig loads the transform config for a project. An explicit path
// must exist; without one the project root is searched and the built-in config
// is used as a fallback. It returns the config, the path it came from and a
// source label.
func LoadTransformConfig(projectRoot, explicitPath string) (*config.TransformConfig, string, string, error) {
	path := explicitPath
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(projectRoot, path)
	}
	if path == "" {
		path = FindTransformConfig(projectRoot)
	}
	if path == "" {
		return DefaultTransformConfig(), "", config.ConfigSourceBuiltin, nil
	}

	cfg, err := ParseTransformFile(path)
	if err != nil {
		return nil, "", "", err
	}

	source := config.ConfigSourceTOML
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		source = config.ConfigSourceYAML
	}
	return cfg, path, source, nil
}

// ParseTransformFile decodes a transform.toml or transform.yaml file
func ParseTransformFile(path string) (*config.TransformConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &domain.ConfigError{Source: path, Reason: "config file not found", Err: err}
		}
		return nil, &domain.ConfigError{Source: path, Reason: "cannot read config file", Err: err}
	}

	var raw transformFileRaw
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, &domain.ConfigError{Source: path, Reason: "failed to parse TOML", Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &domain.ConfigError{Source: path, Reason: "failed to parse YAML", Err: err}
		}
	default:
		return nil, &domain.ConfigError{Source: path, Reason: fmt.Sprintf("unsupported config format %q", ext)}
	}

	return raw.toDomain(), nil
}

func (raw *transformFileRaw) toDomain() *config.TransformConfig {
	cfg := &config.TransformConfig{
		Base: config.BaseConfig{
			Targets:     raw.Targets.toDomain(),
			Assumptions: raw.Assumptions,
			Presets:     convertRefs(raw.Presets),
			Plugins:     convertRefs(raw.Plugins),
		},
		Versions: config.DefaultVersionSources(),
	}
	if cfg.Base.Assumptions == nil {
		cfg.Base.Assumptions = make(map[string]bool)
	}

	if raw.Versions != nil {
		if raw.Versions.Namespace != "" {
			cfg.Versions.Namespace = raw.Versions.Namespace
		}
		if raw.Versions.RuntimePackage != "" {
			cfg.Versions.RuntimePackage = raw.Versions.RuntimePackage
		}
		if raw.Versions.PolyfillPackage != "" {
			cfg.Versions.PolyfillPackage = raw.Versions.PolyfillPackage
		}
	}

	for _, o := range raw.Overrides {
		cfg.Overrides = append(cfg.Overrides, config.OverrideRule{
			Name:        o.Name,
			Test:        o.Test,
			Targets:     o.Targets.toDomain(),
			Assumptions: o.Assumptions,
			Presets:     convertRefs(o.Presets),
			Plugins:     convertRefs(o.Plugins),
		})
	}

	// A missing [ignore] table keeps the standard test-artifact exclusions
	cfg.Ignore = DefaultIgnoreRule()
	if raw.Ignore != nil {
		cfg.Ignore = config.IgnoreRule{Patterns: make([]config.IgnorePattern, 0, len(raw.Ignore.Patterns))}
		for _, p := range raw.Ignore.Patterns {
			cfg.Ignore.Patterns = append(cfg.Ignore.Patterns, config.IgnorePattern(p))
		}
	}

	return cfg
}

// targetsRaw is a decoded targets table with every constraint kept as text.
// Values are a version string or a list of query strings.
type targetsRaw map[string]config.TargetConstraint

// UnmarshalTOML rejects floats: TOML has already turned 14.20 into 14.2 by the
// time the value arrives here.
func (t *targetsRaw) UnmarshalTOML(data any) error {
	table, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("targets must be a table, got %T", data)
	}
	out := make(targetsRaw, len(table))
	for runtime, value := range table {
		switch v := value.(type) {
		case string:
			out[runtime] = config.TargetConstraint{v}
		case int64:
			out[runtime] = config.TargetConstraint{strconv.FormatInt(v, 10)}
		case float64:
			return fmt.Errorf("%s: quote version constraints, TOML reads %v as a float", runtime, v)
		case []any:
			constraint := make(config.TargetConstraint, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return fmt.Errorf("%s: constraint entries must be strings, got %T", runtime, item)
				}
				constraint = append(constraint, s)
			}
			out[runtime] = constraint
		default:
			return fmt.Errorf("%s: unsupported constraint type %T", runtime, value)
		}
	}
	*t = out
	return nil
}

// UnmarshalYAML reads scalars from the source text, so an unquoted node: 14.20
// stays "14.20".
func (t *targetsRaw) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: targets must be a mapping", node.Line)
	}
	out := make(targetsRaw, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch value.Kind {
		case yaml.ScalarNode:
			if value.Tag == "!!null" {
				out[key.Value] = config.TargetConstraint{}
				continue
			}
			out[key.Value] = config.TargetConstraint{value.Value}
		case yaml.SequenceNode:
			constraint := make(config.TargetConstraint, 0, len(value.Content))
			for _, item := range value.Content {
				if item.Kind != yaml.ScalarNode {
					return fmt.Errorf("line %d: %s: constraint entries must be strings", item.Line, key.Value)
				}
				constraint = append(constraint, item.Value)
			}
			out[key.Value] = constraint
		default:
			return fmt.Errorf("line %d: %s: unsupported constraint", value.Line, key.Value)
		}
	}
	*t = out
	return nil
}

func (t targetsRaw) toDomain() config.Targets {
	if t == nil {
		return nil
	}
	return config.Targets(t).Clone()
}

func convertRefs(raw []refRaw) []config.Ref {
	if len(raw) == 0 {
		return nil
	}
	refs := make([]config.Ref, 0, len(raw))
	for _, r := range raw {
		ref := config.Ref{Name: r.Name}
		if len(r.Options) > 0 {
			ref.Options = normalizeOptions(r.Options)
		}
		refs = append(refs, ref)
	}
	return refs
}

// normalizeOptions rewrites decoder-specific container types so options look the
// same whether they came from TOML, YAML or the built-in config.
func normalizeOptions(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return normalizeOptions(val)
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeOptions(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case int:
		return int64(val)
	default:
		return val
	}
}
