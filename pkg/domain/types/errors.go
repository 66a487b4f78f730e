package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures surfaced by stencil. Callers test them with
// goerr.HasTag.
var (
	// ErrTagRegistryUnavailable is set when the registry cannot be reached or
	// answers with something that is not a release list.
	ErrTagRegistryUnavailable = goerr.NewTag("registry_unavailable")

	// ErrTagPackageNotFound is set when the registry does not know the package.
	ErrTagPackageNotFound = goerr.NewTag("package_not_found")

	// ErrTagNoReleasesAvailable is set when the package has no (matching) release.
	ErrTagNoReleasesAvailable = goerr.NewTag("no_releases_available")

	// ErrTagNetwork is set when a distribution download fails on transport
	// level or with a non-2xx status.
	ErrTagNetwork = goerr.NewTag("network")

	// ErrTagCorruptArchive is set when a downloaded payload is not a valid archive.
	ErrTagCorruptArchive = goerr.NewTag("corrupt_archive")

	// ErrTagRender is set when the README template cannot be rendered.
	ErrTagRender = goerr.NewTag("render")

	ErrTagInvalidArgument = goerr.NewTag("invalid_argument")
)
