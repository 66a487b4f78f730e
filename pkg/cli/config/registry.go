package config

import (
	"net/http"
	"time"

	"github.com/m-mizutani/stencil/pkg/domain/interfaces"
	"github.com/m-mizutani/stencil/pkg/domain/types"
	"github.com/m-mizutani/stencil/pkg/infra/packagist"
	"github.com/urfave/cli/v3"
)

// Registry holds package registry configuration
type Registry struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Flags returns CLI flags for registry configuration
func (c *Registry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "registry-url",
			Usage:       "Composer registry base URL",
			Value:       packagist.DefaultBaseURL,
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("STENCIL_REGISTRY_URL"),
		},
		&cli.StringFlag{
			Name:        "registry-token",
			Usage:       "Bearer token for private registries",
			Destination: &c.Token,
			Sources:     cli.EnvVars("STENCIL_REGISTRY_TOKEN"),
		},
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Timeout of registry and download requests",
			Value:       60 * time.Second,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("STENCIL_HTTP_TIMEOUT"),
		},
	}
}

// HTTPClient returns an HTTP client applying the configured timeout
func (c *Registry) HTTPClient() *http.Client {
	return &http.Client{Timeout: c.Timeout}
}

// NewClient creates a registry client from the configuration
func (c *Registry) NewClient(httpClient interfaces.HTTPClient) interfaces.RegistryClient {
	opts := []packagist.Option{packagist.WithBaseURL(c.BaseURL)}
	if c.Token != "" {
		opts = append(opts, packagist.WithToken(types.Secret(c.Token)))
	}
	return packagist.NewClient(httpClient, opts...)
}
