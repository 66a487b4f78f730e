package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stencil/pkg/cli/config"
	controller "github.com/m-mizutani/stencil/pkg/controller/http"
	"github.com/m-mizutani/stencil/pkg/infra/archive"
	"github.com/m-mizutani/stencil/pkg/infra/view"
	"github.com/m-mizutani/stencil/pkg/usecase"
	"github.com/m-mizutani/stencil/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		registryCfg config.Registry
		readmeCfg   config.Readme
		vendor      string
		name        string
	)

	flags := append(serverCfg.Flags(), registryCfg.Flags()...)
	flags = append(flags, readmeCfg.Flags()...)
	flags = append(flags, packageFlags(&vendor, &name)...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP API server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			logger.Info("Starting stencil server",
				slog.String("addr", serverCfg.Addr),
				slog.String("registry", registryCfg.BaseURL),
			)

			renderer, err := view.NewRenderer()
			if err != nil {
				return err
			}

			// Create use cases
			httpClient := registryCfg.HTTPClient()
			releaseUC := usecase.NewRelease(registryCfg.NewClient(httpClient), httpClient, archive.NewZipOpener())
			readmeUC := usecase.NewReadme(renderer, readmeCfg.Options()...)

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				releaseUC,
				readmeUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithPackage(vendor, name),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
