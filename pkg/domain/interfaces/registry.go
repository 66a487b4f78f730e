package interfaces

import (
	"context"
	"net/http"

	"github.com/m-mizutani/stencil/pkg/domain/model"
)

// HTTPClient sends HTTP requests. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RegistryClient defines operations for querying a package registry
type RegistryClient interface {
	// ListReleases returns releases of vendor/name in the order the registry
	// publishes them (newest first)
	ListReleases(ctx context.Context, vendor, name string) ([]*model.Release, error)
}

// ArchiveOpener opens raw distribution bytes as an archive
type ArchiveOpener interface {
	Open(data []byte) (model.Archive, error)
}

// ViewRenderer renders a named template with variables
type ViewRenderer interface {
	Render(name string, vars map[string]any) (string, error)
}
