package interactive

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/xform/internal/domain/config"
	"github.com/trebuchet-org/xform/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectFile selects a file from a list
func (s *SelectorAdapter) SelectFile(ctx context.Context, files []string, prompt string) (string, error) {
	if len(files) == 0 {
		return "", fmt.Errorf("no files provided for selection")
	}

	// If only one file, return it directly
	if len(files) == 1 {
		return files[0], nil
	}

	// In non-interactive mode, we can't select
	if s.config.NonInteractive || s.config.JSON {
		return "", fmt.Errorf("a path is required in non-interactive mode (%d candidate files)", len(files))
	}

	options := formatFileOptions(files)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, type to search, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(files),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return files[index], nil
}

// formatFileOptions renders "name.ts (dir)" so the file name leads
func formatFileOptions(files []string) []string {
	options := make([]string, len(files))
	for i, f := range files {
		dir, name := path.Split(f)
		nameStr := color.New(color.FgWhite, color.Bold).Sprint(name)
		if dir == "" {
			options[i] = nameStr
			continue
		}
		options[i] = fmt.Sprintf("%s (%s)", nameStr, color.New(color.FgBlue).Sprint(strings.TrimSuffix(dir, "/")))
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		// Convert to lowercase for case-insensitive search
		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		// First try simple substring match
		if strings.Contains(item, input) {
			return true
		}

		// Then try fuzzy match
		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.FileSelector = (*SelectorAdapter)(nil)
