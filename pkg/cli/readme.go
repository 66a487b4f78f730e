package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stencil/pkg/cli/config"
	"github.com/m-mizutani/stencil/pkg/infra/view"
	"github.com/m-mizutani/stencil/pkg/usecase"
	"github.com/m-mizutani/stencil/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdReadme() *cli.Command {
	var (
		projectCfg config.Project
		readmeCfg  config.Readme
		output     string
	)

	flags := append(projectCfg.Flags(), readmeCfg.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Usage:       "File to write the README to (default: stdout)",
		Destination: &output,
	})

	return &cli.Command{
		Name:  "readme",
		Usage: "Generate a README from a project configuration file",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := projectCfg.Load()
			if err != nil {
				return err
			}

			renderer, err := view.NewRenderer()
			if err != nil {
				return err
			}

			readme, err := usecase.NewReadme(renderer, readmeCfg.Options()...).Generate(ctx, cfg)
			if err != nil {
				return err
			}

			if output == "" {
				_, err := fmt.Fprint(os.Stdout, readme)
				return err
			}

			if err := os.WriteFile(output, []byte(readme), 0644); err != nil {
				return goerr.Wrap(err, "failed to write README", goerr.V("output", output))
			}

			logging.From(ctx).Info("README generated",
				"project", cfg.Metadata.FullName(),
				"output", output,
			)
			return nil
		},
	}
}
