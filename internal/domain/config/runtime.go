package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Environment the resolver runs under (sourced from --env / NODE_ENV)
	Env EnvMode

	// Execution settings
	Debug          bool
	JSON           bool // Output in JSON format
	NonInteractive bool
	Concurrency    int
	Timeout        time.Duration

	// Config source tracking
	ConfigPath   string // Empty when the built-in config is used
	ConfigSource string // "transform.toml", "transform.yaml" or "built-in"
	ManifestPath string

	// Resolved configurations
	Versions  DerivedVersions
	Transform *TransformConfig
}

const (
	ConfigSourceBuiltin = "built-in"
	ConfigSourceTOML    = "transform.toml"
	ConfigSourceYAML    = "transform.yaml"
)
