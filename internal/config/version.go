package config

import (
	"strings"

	"github.com/trebuchet-org/xform/internal/domain"
	"golang.org/x/mod/semver"
)

// rangeOperators are stripped from manifest versions before parsing ("^3.36.1").
const rangeOperators = "^~=<> v"

// TruncateVersion reduces a manifest version to major.minor ("3.36.1" -> "3.36").
// The polyfill injector only distinguishes minor releases.
func TruncateVersion(field, raw string) (string, error) {
	major, minor, err := splitVersion(field, raw)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(semver.MajorMinor("v"+major+"."+minor), "v"), nil
}

// CheckVersion verifies raw has at least major.minor without altering it.
func CheckVersion(field, raw string) error {
	_, _, err := splitVersion(field, raw)
	return err
}

func splitVersion(field, raw string) (string, string, error) {
	v := strings.TrimLeft(strings.TrimSpace(raw), rangeOperators)
	if v == "" {
		return "", "", &domain.VersionParseError{Field: field, Value: raw, Reason: "empty version"}
	}

	parts := strings.Split(v, ".")
	if len(parts) < 2 {
		return "", "", &domain.VersionParseError{Field: field, Value: raw, Reason: "expected at least major.minor"}
	}

	if !semver.IsValid("v" + parts[0] + "." + parts[1]) {
		return "", "", &domain.VersionParseError{Field: field, Value: raw, Reason: "major and minor must be numeric"}
	}

	return parts[0], parts[1], nil
}
