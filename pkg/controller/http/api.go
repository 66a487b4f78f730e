package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stencil/pkg/domain/interfaces"
	"github.com/m-mizutani/stencil/pkg/domain/model"
	"github.com/m-mizutani/stencil/pkg/domain/types"
	"github.com/m-mizutani/stencil/pkg/utils/logging"
)

type apiHandler struct {
	releaseUC interfaces.ReleaseUseCase
	readmeUC  interfaces.ReadmeUseCase
	vendor    string
	name      string
	maxBody   int64
}

// releaseResponse is the JSON representation of a release
type releaseResponse struct {
	Package     string    `json:"package"`
	Version     string    `json:"version"`
	DistURL     string    `json:"dist_url"`
	PublishedAt time.Time `json:"published_at"`
}

// handleLatestRelease responds with the latest release of the configured
// package. The "constraint" query narrows it to a semver range.
func (h *apiHandler) handleLatestRelease(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.From(ctx)

	release, err := h.releaseUC.Resolve(ctx, h.vendor, h.name, r.URL.Query().Get("constraint"))
	if err != nil {
		logger.Error("Failed to resolve release", "error", err)
		writeError(ctx, w, err, statusOf(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(&releaseResponse{
		Package:     release.FullName(),
		Version:     release.Version,
		DistURL:     release.DistURL,
		PublishedAt: release.PublishedAt,
	}); err != nil {
		logger.Error("Failed to encode release response", "error", err)
	}
}

// handleReadme renders a README for the project configuration in the body
func (h *apiHandler) handleReadme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.From(ctx)

	var cfg model.ProjectConfiguration
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody)).Decode(&cfg); err != nil {
		logger.Warn("Invalid project configuration", "error", err)
		writeError(ctx, w, goerr.Wrap(err, "invalid JSON payload", goerr.T(types.ErrTagInvalidArgument)), http.StatusBadRequest)
		return
	}

	readme, err := h.readmeUC.Generate(ctx, &cfg)
	if err != nil {
		logger.Error("Failed to generate README", "error", err)
		writeError(ctx, w, err, statusOf(err))
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(readme)); err != nil {
		logger.Error("Failed to write README response", "error", err)
	}
}
