package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/stencil/pkg/cli/config"
	"github.com/m-mizutani/stencil/pkg/domain/model"
	"github.com/m-mizutani/stencil/pkg/infra/archive"
	"github.com/m-mizutani/stencil/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdReleases() *cli.Command {
	var (
		registryCfg config.Registry
		vendor      string
		name        string
		limit       int
	)

	flags := append(registryCfg.Flags(), packageFlags(&vendor, &name)...)
	flags = append(flags, &cli.IntFlag{
		Name:        "limit",
		Usage:       "Maximum number of releases to show (0 shows all)",
		Value:       10,
		Destination: &limit,
	})

	return &cli.Command{
		Name:    "releases",
		Aliases: []string{"r"},
		Usage:   "List published releases, newest first",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			httpClient := registryCfg.HTTPClient()
			releaseUC := usecase.NewRelease(registryCfg.NewClient(httpClient), httpClient, archive.NewZipOpener())

			releases, err := releaseUC.ListReleases(ctx, vendor, name)
			if err != nil {
				return err
			}

			if limit > 0 && len(releases) > limit {
				releases = releases[:limit]
			}

			printReleases(os.Stdout, releases)
			return nil
		},
	}
}

// printReleases writes one line per release and highlights the latest one
func printReleases(w io.Writer, releases []*model.Release) {
	latest := color.New(color.FgGreen, color.Bold)

	for i, release := range releases {
		published := "-"
		if !release.PublishedAt.IsZero() {
			published = release.PublishedAt.Format("2006-01-02")
		}

		line := fmt.Sprintf("%-16s %s  %s", release.Version, published, release.DistURL)
		if i == 0 {
			_, _ = latest.Fprintln(w, line+"  (latest)")
			continue
		}
		_, _ = fmt.Fprintln(w, line)
	}
}
