package usecase

import (
	"context"

	"github.com/trebuchet-org/xform/internal/config"
	domainconfig "github.com/trebuchet-org/xform/internal/domain/config"
)

// ConfigResolver computes per-file transform configuration
type ConfigResolver interface {
	Resolve(filePath string, env domainconfig.EnvMode) *domainconfig.ResolvedConfig
	MatchOverrides(filePath string) []config.OverrideMatch
	IsIgnored(filePath string, env domainconfig.EnvMode) (domainconfig.IgnorePattern, bool)
	Overrides() []domainconfig.OverrideRule
}

// SourceFileLister enumerates transformable source files below a set of roots
type SourceFileLister interface {
	ListSourceFiles(ctx context.Context, roots []string) ([]string, error)
}

// LocalConfigStore handles local config persistence
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*domainconfig.LocalConfig, error)
	Save(ctx context.Context, config *domainconfig.LocalConfig) error
	GetPath() string
}

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// FileSelector lets the user pick one file from a list
type FileSelector interface {
	SelectFile(ctx context.Context, files []string, prompt string) (string, error)
}
