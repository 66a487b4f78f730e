package usecase

import (
	"context"
	"io"
	"net/http"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stencil/pkg/domain/interfaces"
	"github.com/m-mizutani/stencil/pkg/domain/model"
	"github.com/m-mizutani/stencil/pkg/domain/types"
	"github.com/m-mizutani/stencil/pkg/utils/logging"
)

type releaseUseCase struct {
	registry   interfaces.RegistryClient
	httpClient interfaces.HTTPClient
	opener     interfaces.ArchiveOpener
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(
	registry interfaces.RegistryClient,
	httpClient interfaces.HTTPClient,
	opener interfaces.ArchiveOpener,
) interfaces.ReleaseUseCase {
	return &releaseUseCase{
		registry:   registry,
		httpClient: httpClient,
		opener:     opener,
	}
}

// ListReleases returns releases in registry order. The order is never
// changed here; a warning is logged if it does not look newest-first.
func (uc *releaseUseCase) ListReleases(ctx context.Context, vendor, name string) ([]*model.Release, error) {
	releases, err := uc.registry.ListReleases(ctx, vendor, name)
	if err != nil {
		return nil, err
	}

	if i := outOfOrder(releases); i > 0 {
		logging.From(ctx).Warn("Registry releases are not ordered newest first",
			"package", releases[i].FullName(),
			"version", releases[i].Version,
			"index", i,
		)
	}

	return releases, nil
}

// Latest returns the first release listed by the registry
func (uc *releaseUseCase) Latest(ctx context.Context, vendor, name string) (*model.Release, error) {
	releases, err := uc.ListReleases(ctx, vendor, name)
	if err != nil {
		return nil, err
	}

	if len(releases) == 0 {
		return nil, goerr.New("no releases available",
			goerr.V("vendor", vendor),
			goerr.V("name", name),
			goerr.T(types.ErrTagNoReleasesAvailable),
		)
	}

	return releases[0], nil
}

// Resolve returns the first listed release satisfying constraint. An empty
// constraint behaves like Latest.
func (uc *releaseUseCase) Resolve(ctx context.Context, vendor, name, constraint string) (*model.Release, error) {
	if constraint == "" {
		return uc.Latest(ctx, vendor, name)
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid version constraint",
			goerr.V("constraint", constraint),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	releases, err := uc.ListReleases(ctx, vendor, name)
	if err != nil {
		return nil, err
	}

	for _, release := range releases {
		v, err := semver.NewVersion(release.Version)
		if err != nil {
			continue
		}
		if c.Check(v) {
			return release, nil
		}
	}

	return nil, goerr.New("no release satisfies constraint",
		goerr.V("vendor", vendor),
		goerr.V("name", name),
		goerr.V("constraint", constraint),
		goerr.T(types.ErrTagNoReleasesAvailable),
	)
}

// Download fetches release.DistURL and opens the body as an archive
func (uc *releaseUseCase) Download(ctx context.Context, release *model.Release) (*model.DownloadedRelease, error) {
	logger := logging.From(ctx)

	logger.Info("Downloading release",
		"package", release.FullName(),
		"version", release.Version,
		"url", release.DistURL,
	)

	data, err := uc.fetch(ctx, release)
	if err != nil {
		return nil, err
	}

	archive, err := uc.opener.Open(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open release archive",
			goerr.V("version", release.Version),
			goerr.V("size", len(data)),
			goerr.T(types.ErrTagCorruptArchive),
		)
	}

	logger.Info("Release downloaded",
		"package", release.FullName(),
		"version", release.Version,
		"size_bytes", len(data),
	)

	return &model.DownloadedRelease{
		Release: release,
		Archive: archive,
	}, nil
}

// DownloadLatest resolves the newest release and downloads it
func (uc *releaseUseCase) DownloadLatest(ctx context.Context, vendor, name string) (*model.DownloadedRelease, error) {
	release, err := uc.Latest(ctx, vendor, name)
	if err != nil {
		return nil, err
	}
	return uc.Download(ctx, release)
}

func (uc *releaseUseCase) fetch(ctx context.Context, release *model.Release) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, release.DistURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create download request",
			goerr.V("url", release.DistURL),
			goerr.T(types.ErrTagNetwork),
		)
	}

	resp, err := uc.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download release",
			goerr.V("url", release.DistURL),
			goerr.T(types.ErrTagNetwork),
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.New("unexpected download status",
			goerr.V("status", resp.StatusCode),
			goerr.V("url", release.DistURL),
			goerr.T(types.ErrTagNetwork),
		)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read download body",
			goerr.V("url", release.DistURL),
			goerr.T(types.ErrTagNetwork),
		)
	}

	return data, nil
}

// outOfOrder returns the index of the first release whose semantic version is
// newer than its predecessor, or -1. Unparsable versions are skipped.
func outOfOrder(releases []*model.Release) int {
	var prev *semver.Version
	for i, release := range releases {
		v, err := semver.NewVersion(release.Version)
		if err != nil {
			continue
		}
		if prev != nil && v.GreaterThan(prev) {
			return i
		}
		prev = v
	}
	return -1
}
