package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stencil/pkg/domain/model"
	"github.com/m-mizutani/stencil/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Project holds the location of the project configuration file
type Project struct {
	Path string
}

// Flags returns CLI flags for the project configuration
func (c *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project",
			Aliases:     []string{"p"},
			Usage:       "Project configuration file (.toml, .yaml, .yml or .json)",
			Value:       "stencil.toml",
			Destination: &c.Path,
			Sources:     cli.EnvVars("STENCIL_PROJECT"),
		},
	}
}

// Load reads and validates the project configuration file. The format is
// chosen by file extension.
func (c *Project) Load() (*model.ProjectConfiguration, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read project configuration", goerr.V("path", c.Path))
	}

	cfg, err := ParseProject(data, filepath.Ext(c.Path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load project configuration",
			goerr.V("path", c.Path),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	return cfg, nil
}

// ParseProject decodes a project configuration in the format named by ext
func ParseProject(data []byte, ext string) (*model.ProjectConfiguration, error) {
	var cfg model.ProjectConfiguration

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to decode TOML")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to decode YAML")
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to decode JSON")
		}
	default:
		return nil, goerr.New("unsupported configuration format", goerr.V("ext", ext))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
