package packagist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stencil/pkg/domain/interfaces"
	"github.com/m-mizutani/stencil/pkg/domain/model"
	"github.com/m-mizutani/stencil/pkg/domain/types"
)

// DefaultBaseURL is the public Packagist metadata mirror
const DefaultBaseURL = "https://repo.packagist.org"

// unsetMarker removes a field inherited from the previous entry of a minified
// composer/2.0 payload
const unsetMarker = `"__unset"`

type client struct {
	httpClient interfaces.HTTPClient
	baseURL    string
	token      types.Secret
}

// Option is a functional option for the Packagist client
type Option func(*client)

// WithBaseURL sets the registry base URL
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

// WithToken sets a bearer token sent with every request (private registries)
func WithToken(token types.Secret) Option {
	return func(c *client) {
		c.token = token
	}
}

// NewClient creates a registry client for the composer/2.0 metadata API
func NewClient(httpClient interfaces.HTTPClient, opts ...Option) interfaces.RegistryClient {
	c := &client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type p2Response struct {
	Packages map[string][]map[string]json.RawMessage `json:"packages"`
	Minified string                                  `json:"minified"`
}

type p2Dist struct {
	URL       string `json:"url"`
	Type      string `json:"type"`
	Reference string `json:"reference"`
}

// ListReleases fetches releases of vendor/name from the p2 endpoint. Entries
// are returned in payload order.
func (c *client) ListReleases(ctx context.Context, vendor, name string) ([]*model.Release, error) {
	fullName := fmt.Sprintf("%s/%s", vendor, name)
	endpoint, err := url.JoinPath(c.baseURL, "p2", vendor, name+".json")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build registry URL",
			goerr.V("base_url", c.baseURL),
			goerr.V("package", fullName),
			goerr.T(types.ErrTagRegistryUnavailable),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create registry request",
			goerr.V("url", endpoint),
			goerr.T(types.ErrTagRegistryUnavailable),
		)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token.String())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query registry",
			goerr.V("url", endpoint),
			goerr.T(types.ErrTagRegistryUnavailable),
		)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, goerr.New("package not found in registry",
			goerr.V("package", fullName),
			goerr.T(types.ErrTagPackageNotFound),
		)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, goerr.New("unexpected registry status",
			goerr.V("status", resp.StatusCode),
			goerr.V("url", endpoint),
			goerr.T(types.ErrTagRegistryUnavailable),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read registry response",
			goerr.V("url", endpoint),
			goerr.T(types.ErrTagRegistryUnavailable),
		)
	}

	var payload p2Response
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, goerr.Wrap(err, "failed to decode registry response",
			goerr.V("url", endpoint),
			goerr.T(types.ErrTagRegistryUnavailable),
		)
	}

	entries, ok := payload.Packages[fullName]
	if !ok {
		return nil, goerr.New("package not listed in registry response",
			goerr.V("package", fullName),
			goerr.T(types.ErrTagPackageNotFound),
		)
	}

	if payload.Minified != "" {
		entries = expand(entries)
	}

	releases := make([]*model.Release, 0, len(entries))
	for i, entry := range entries {
		release, err := toRelease(vendor, name, entry)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to decode release entry",
				goerr.V("package", fullName),
				goerr.V("index", i),
				goerr.T(types.ErrTagRegistryUnavailable),
			)
		}
		releases = append(releases, release)
	}

	return releases, nil
}

// expand restores full entries from a minified payload where each entry only
// carries the fields that differ from its predecessor
func expand(entries []map[string]json.RawMessage) []map[string]json.RawMessage {
	expanded := make([]map[string]json.RawMessage, 0, len(entries))
	var prev map[string]json.RawMessage

	for _, entry := range entries {
		current := make(map[string]json.RawMessage, len(prev)+len(entry))
		for k, v := range prev {
			current[k] = v
		}
		for k, v := range entry {
			if string(v) == unsetMarker {
				delete(current, k)
				continue
			}
			current[k] = v
		}

		expanded = append(expanded, current)
		prev = current
	}

	return expanded
}

func toRelease(vendor, name string, entry map[string]json.RawMessage) (*model.Release, error) {
	release := &model.Release{
		Vendor: vendor,
		Name:   name,
	}

	raw, ok := entry["version"]
	if !ok {
		return nil, goerr.New("version is missing")
	}
	if err := json.Unmarshal(raw, &release.Version); err != nil {
		return nil, goerr.Wrap(err, "invalid version field")
	}

	if raw, ok := entry["dist"]; ok && string(raw) != "null" {
		var dist p2Dist
		if err := json.Unmarshal(raw, &dist); err != nil {
			return nil, goerr.Wrap(err, "invalid dist field", goerr.V("version", release.Version))
		}
		release.DistURL = dist.URL
		release.DistType = dist.Type
		release.DistReference = dist.Reference
	}

	if raw, ok := entry["time"]; ok {
		var ts string
		if err := json.Unmarshal(raw, &ts); err != nil {
			return nil, goerr.Wrap(err, "invalid time field", goerr.V("version", release.Version))
		}
		if ts != "" {
			publishedAt, err := time.Parse(time.RFC3339, ts)
			if err != nil {
				return nil, goerr.Wrap(err, "invalid time format",
					goerr.V("version", release.Version),
					goerr.V("time", ts),
				)
			}
			release.PublishedAt = publishedAt
		}
	}

	return release, nil
}
