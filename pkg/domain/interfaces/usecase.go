package interfaces

import (
	"context"

	"github.com/m-mizutani/stencil/pkg/domain/model"
)

// ReleaseUseCase defines release resolution and acquisition
type ReleaseUseCase interface {
	// ListReleases returns all releases of vendor/name, newest first
	ListReleases(ctx context.Context, vendor, name string) ([]*model.Release, error)

	// Latest returns the newest release of vendor/name
	Latest(ctx context.Context, vendor, name string) (*model.Release, error)

	// Resolve returns the newest release satisfying a semver constraint
	Resolve(ctx context.Context, vendor, name, constraint string) (*model.Release, error)

	// Download fetches the release distribution and opens it as an archive
	Download(ctx context.Context, release *model.Release) (*model.DownloadedRelease, error)

	// DownloadLatest resolves the newest release and downloads it
	DownloadLatest(ctx context.Context, vendor, name string) (*model.DownloadedRelease, error)
}

// ReadmeUseCase defines README generation
type ReadmeUseCase interface {
	// Render composes the README from task groups, links and metadata.
	// Empty script or initializerURL fall back to the configured defaults.
	Render(ctx context.Context, groups []*model.TaskGroup, links []*model.Link, meta model.Metadata, script, initializerURL string) (string, error)

	// Generate derives task groups and links from cfg and renders the README
	Generate(ctx context.Context, cfg *model.ProjectConfiguration) (string, error)
}
