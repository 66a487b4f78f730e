package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stencil/pkg/cli/config"
	"github.com/m-mizutani/stencil/pkg/infra/archive"
	"github.com/m-mizutani/stencil/pkg/usecase"
	"github.com/m-mizutani/stencil/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdDownload() *cli.Command {
	var (
		registryCfg config.Registry
		vendor      string
		name        string
		constraint  string
		output      string
		keepRoot    bool
	)

	flags := append(registryCfg.Flags(), packageFlags(&vendor, &name)...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "constraint",
			Aliases:     []string{"c"},
			Usage:       "Semver constraint for the release, e.g. ^11.0 (default: latest)",
			Destination: &constraint,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Directory to extract the release into",
			Required:    true,
			Destination: &output,
		},
		&cli.BoolFlag{
			Name:        "keep-root",
			Usage:       "Keep the top-level directory of the archive",
			Destination: &keepRoot,
		},
	)

	return &cli.Command{
		Name:    "download",
		Aliases: []string{"d"},
		Usage:   "Download a release and extract it",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			httpClient := registryCfg.HTTPClient()
			releaseUC := usecase.NewRelease(registryCfg.NewClient(httpClient), httpClient, archive.NewZipOpener())

			release, err := releaseUC.Resolve(ctx, vendor, name, constraint)
			if err != nil {
				return err
			}

			downloaded, err := releaseUC.Download(ctx, release)
			if err != nil {
				return err
			}
			defer func() {
				if err := downloaded.Close(); err != nil {
					logger.Warn("Failed to close archive", "error", err)
				}
			}()

			result, err := downloaded.Archive.Extract(output, !keepRoot)
			if err != nil {
				return goerr.Wrap(err, "failed to extract release", goerr.V("output", output))
			}

			logger.Info("Extracted release",
				slog.String("version", release.Version),
				slog.String("dir", result.Dir),
				slog.Int("file_count", len(result.Files)),
				slog.Int64("total_size_bytes", result.Size),
			)
			return nil
		},
	}
}
