package cli

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/stencil/pkg/cli/config"
	"github.com/m-mizutani/stencil/pkg/domain/types"
	"github.com/m-mizutani/stencil/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var logger *slog.Logger

	app := &cli.Command{
		Name:    "stencil",
		Usage:   "Bootstrap a Laravel project with a tailored README",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			logger = logger.With("run_id", uuid.NewString())
			slog.SetDefault(logger)
			ctx = logging.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdReleases(),
			cmdDownload(),
			cmdReadme(),
			cmdServe(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}

// packageFlags returns flags selecting the registry package
func packageFlags(vendor, name *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "vendor",
			Usage:       "Package vendor",
			Value:       "laravel",
			Destination: vendor,
			Sources:     cli.EnvVars("STENCIL_PACKAGE_VENDOR"),
		},
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Package name",
			Value:       "laravel",
			Destination: name,
			Sources:     cli.EnvVars("STENCIL_PACKAGE_NAME"),
		},
	}
}
