package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrInvalidConfigKey is returned when a local config key is unknown
	ErrInvalidConfigKey = errors.New("invalid config key")
)

// ConfigError reports a base configuration that is missing or structurally
// invalid. It is fatal: no file is resolved once it occurs.
type ConfigError struct {
	Source string // file path or "built-in"
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("invalid transform config (%s): %s", e.Source, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// VersionParseError reports a manifest version that cannot be reduced to major.minor
type VersionParseError struct {
	Field  string // manifest key the value came from
	Value  string
	Reason string
}

func (e *VersionParseError) Error() string {
	return fmt.Sprintf("cannot parse version %q for %s: %s", e.Value, e.Field, e.Reason)
}

// IsFatalConfigError reports whether err aborts startup
func IsFatalConfigError(err error) bool {
	var cfgErr *ConfigError
	var verErr *VersionParseError
	return errors.As(err, &cfgErr) || errors.As(err, &verErr)
}
