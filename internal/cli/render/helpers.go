package render

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/xform/internal/domain/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	headerStyle    = color.New(color.Bold, color.FgHiWhite)
	labelStyle     = color.New(color.FgCyan)
	overrideStyle  = color.New(color.FgMagenta, color.Bold)
	ignoredStyle   = color.New(color.FgYellow)
	faintStyle     = color.New(color.Faint)
	includedStyle  = color.New(color.FgGreen)
	predicateStyle = color.New(color.FgBlue)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// envTitle renders an environment mode for headings, e.g. "Production"
func envTitle(env config.EnvMode) string {
	return cases.Title(language.English).String(string(env))
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// formatTargets renders targets as "browsers=defaults,not IE 11 node=14.20"
func formatTargets(targets config.Targets) string {
	if len(targets) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(targets))
	for k := range targets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strings.Join(targets[k], ","))
	}
	return strings.Join(parts, " ")
}

// formatAssumptions renders enabled and disabled assumptions in key order
func formatAssumptions(assumptions map[string]bool) string {
	if len(assumptions) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(assumptions))
	for k := range assumptions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if assumptions[k] {
			parts = append(parts, k)
		} else {
			parts = append(parts, "!"+k)
		}
	}
	return strings.Join(parts, " ")
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
