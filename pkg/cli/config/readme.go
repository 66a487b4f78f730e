package config

import (
	"github.com/m-mizutani/stencil/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Readme holds README generation configuration
type Readme struct {
	InitializerURL       string
	InitializationScript string
}

// Flags returns CLI flags for README generation
func (c *Readme) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "initializer-url",
			Usage:       "URL of the initializer linked from the README",
			Value:       usecase.DefaultInitializerURL,
			Destination: &c.InitializerURL,
			Sources:     cli.EnvVars("STENCIL_INITIALIZER_URL"),
		},
		&cli.StringFlag{
			Name:        "initialization-script",
			Usage:       "Name of the initialization script mentioned in the README",
			Value:       usecase.DefaultInitializationScript,
			Destination: &c.InitializationScript,
			Sources:     cli.EnvVars("STENCIL_INITIALIZATION_SCRIPT"),
		},
	}
}

// Options returns README use case options
func (c *Readme) Options() []usecase.ReadmeOption {
	return []usecase.ReadmeOption{
		usecase.WithInitializerURL(c.InitializerURL),
		usecase.WithInitializationScript(c.InitializationScript),
	}
}
