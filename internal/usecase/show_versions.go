package usecase

import (
	"context"

	"github.com/trebuchet-org/xform/internal/domain/config"
)

// ShowVersionsResult contains the derived versions and where they came from
type ShowVersionsResult struct {
	Versions     config.DerivedVersions
	Sources      config.VersionSources
	ManifestPath string
}

// ShowVersions is a use case for showing the derived version inputs
type ShowVersions struct {
	cfg *config.RuntimeConfig
}

// NewShowVersions creates a new ShowVersions use case
func NewShowVersions(cfg *config.RuntimeConfig) *ShowVersions {
	return &ShowVersions{cfg: cfg}
}

// Run executes the show versions use case
func (uc *ShowVersions) Run(ctx context.Context) (*ShowVersionsResult, error) {
	return &ShowVersionsResult{
		Versions:     uc.cfg.Versions,
		Sources:      uc.cfg.Transform.Versions,
		ManifestPath: uc.cfg.ManifestPath,
	}, nil
}
