package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EnvMode is the environment flag a resolution runs under.
// Only EnvTest changes behavior; the other modes are accepted so callers can pass
// NODE_ENV through unchanged.
type EnvMode string

const (
	EnvTest        EnvMode = "test"
	EnvDevelopment EnvMode = "development"
	EnvProduction  EnvMode = "production"
	EnvOther       EnvMode = "other"
)

// EnvModes returns all valid environment modes
func EnvModes() []EnvMode {
	return []EnvMode{EnvTest, EnvDevelopment, EnvProduction, EnvOther}
}

// ParseEnvMode converts a string to an EnvMode. An empty string maps to EnvOther.
func ParseEnvMode(s string) (EnvMode, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return EnvOther, nil
	}
	for _, m := range EnvModes() {
		if string(m) == v {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown environment mode: %q", s)
}

func (m EnvMode) IsTest() bool {
	return m == EnvTest
}

// TargetConstraint is one runtime's version constraint. Most runtimes carry a
// single version string, browsers carry a list of queries.
type TargetConstraint []string

func (c TargetConstraint) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

func (c *TargetConstraint) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*c = TargetConstraint{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("target constraint must be a string or a list of strings: %w", err)
	}
	*c = list
	return nil
}

// Targets maps a runtime identifier (node, browsers, ...) to its constraint
type Targets map[string]TargetConstraint

// Clone returns a deep copy. A nil receiver stays nil so "absent" survives copying.
func (t Targets) Clone() Targets {
	if t == nil {
		return nil
	}
	out := make(Targets, len(t))
	for k, v := range t {
		out[k] = append(TargetConstraint(nil), v...)
	}
	return out
}

// Ref names a preset or plugin and optionally carries its options.
// On the wire it is either "name" or ["name", {options}].
type Ref struct {
	Name    string
	Options map[string]any
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if len(r.Options) == 0 {
		return json.Marshal(r.Name)
	}
	return json.Marshal([]any{r.Name, r.Options})
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*r = Ref{Name: name}
		return nil
	}
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) == 0 || len(pair) > 2 {
		return fmt.Errorf("reference must be a name or a [name, options] pair")
	}
	if err := json.Unmarshal(pair[0], &name); err != nil {
		return fmt.Errorf("reference name must be a string: %w", err)
	}
	ref := Ref{Name: name}
	if len(pair) == 2 {
		if err := json.Unmarshal(pair[1], &ref.Options); err != nil {
			return fmt.Errorf("options for %s must be an object: %w", name, err)
		}
	}
	*r = ref
	return nil
}

// CloneRefs copies a reference list, including option maps, so resolved configs
// never alias the loaded base.
func CloneRefs(refs []Ref) []Ref {
	out := make([]Ref, len(refs))
	for i, r := range refs {
		out[i] = Ref{Name: r.Name, Options: cloneOptions(r.Options)}
	}
	return out
}

func cloneOptions(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneOptions(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(val))
		for i, item := range val {
			out[i] = cloneOptions(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return val
	}
}

// BaseConfig is the configuration applied when no override matches
type BaseConfig struct {
	Targets     Targets
	Assumptions map[string]bool
	Presets     []Ref
	Plugins     []Ref
}

// OverrideRule is a path-scoped partial configuration applied over the base.
// Targets replaces the base targets wholesale when non-nil; the other fields extend.
type OverrideRule struct {
	Name        string
	Test        []string
	Targets     Targets
	Assumptions map[string]bool
	Presets     []Ref
	Plugins     []Ref
}

// Label returns the rule name, or its position when it has none
func (r OverrideRule) Label(index int) string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("#%d", index)
}

// IgnorePattern is a path exclusion. Patterns written as /expr/ are regular
// expressions, everything else is a glob.
type IgnorePattern string

func (p IgnorePattern) IsRegexp() bool {
	s := string(p)
	return len(s) >= 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/")
}

// Expr returns the pattern body without regexp delimiters
func (p IgnorePattern) Expr() string {
	if p.IsRegexp() {
		return string(p)[1 : len(p)-1]
	}
	return string(p)
}

// IgnoreRule excludes files from transformation unless running tests
type IgnoreRule struct {
	Patterns []IgnorePattern
}

// ForEnv returns the patterns in effect for the given environment
func (r IgnoreRule) ForEnv(env EnvMode) []IgnorePattern {
	if env.IsTest() {
		return []IgnorePattern{}
	}
	return append([]IgnorePattern{}, r.Patterns...)
}

// VersionSources says where the derived versions are read from in the manifest
type VersionSources struct {
	Namespace       string `toml:"namespace" yaml:"namespace"`
	RuntimePackage  string `toml:"runtime_package" yaml:"runtime_package"`
	PolyfillPackage string `toml:"polyfill_package" yaml:"polyfill_package"`
}

// DefaultVersionSources returns the manifest locations used when none are configured
func DefaultVersionSources() VersionSources {
	return VersionSources{
		Namespace:       "devDependencies",
		RuntimePackage:  "@babel/runtime",
		PolyfillPackage: "core-js-pure",
	}
}

// DerivedVersions are read once at startup and injected into plugin options.
// PolyfillVersion is already truncated to major.minor.
type DerivedVersions struct {
	RuntimeVersion  string `json:"runtimeVersion"`
	PolyfillVersion string `json:"polyfillVersion"`
}

// TransformConfig is the full static rule set
type TransformConfig struct {
	Base      BaseConfig
	Overrides []OverrideRule
	Ignore    IgnoreRule
	Versions  VersionSources
}

// ResolvedConfig is the configuration for one file under one environment.
// Its JSON form is the contract with the transform executor.
type ResolvedConfig struct {
	Targets     Targets         `json:"targets"`
	Assumptions map[string]bool `json:"assumptions"`
	Presets     []Ref           `json:"presets"`
	Plugins     []Ref           `json:"plugins"`
	Ignore      []IgnorePattern `json:"ignore"`

	// Labels of the override rules that applied, in declaration order
	MatchedOverrides []string `json:"-"`
}
