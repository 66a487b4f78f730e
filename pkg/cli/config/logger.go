package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/m-mizutani/stencil/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Logger holds logger configuration
type Logger struct {
	Level string
	JSON  bool

	// Writer receives log output. Defaults to os.Stderr so that stdout stays
	// free for command output.
	Writer io.Writer
}

// Flags returns CLI flags for logger configuration
func (c *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &c.Level,
			Sources:     cli.EnvVars("STENCIL_LOG_LEVEL"),
		},
		&cli.BoolFlag{
			Name:        "log-json",
			Usage:       "Output logs in JSON format",
			Value:       false,
			Destination: &c.JSON,
			Sources:     cli.EnvVars("STENCIL_LOG_JSON"),
		},
	}
}

// Configure configures and returns a logger
func (c *Logger) Configure() (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, goerr.New("invalid log level",
			goerr.V("level", c.Level),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	mask := masq.New(masq.WithType[types.Secret]())

	w := c.Writer
	if w == nil {
		w = os.Stderr
	}

	if c.JSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: mask,
		})), nil
	}

	handler := clog.New(
		clog.WithWriter(w),
		clog.WithLevel(level),
		clog.WithColor(c.Writer == nil && !color.NoColor),
	)
	return slog.New(&maskHandler{Handler: handler, replace: mask}), nil
}

// maskHandler applies replace to every attribute before passing records to
// the wrapped handler.
type maskHandler struct {
	slog.Handler
	replace func(groups []string, a slog.Attr) slog.Attr
	groups  []string
}

func (h *maskHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.replace(h.groups, a))
		return true
	})
	return h.Handler.Handle(ctx, masked)
}

func (h *maskHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.replace(h.groups, a)
	}
	return &maskHandler{
		Handler: h.Handler.WithAttrs(masked),
		replace: h.replace,
		groups:  h.groups,
	}
}

func (h *maskHandler) WithGroup(name string) slog.Handler {
	return &maskHandler{
		Handler: h.Handler.WithGroup(name),
		replace: h.replace,
		groups:  append(slices.Clone(h.groups), name),
	}
}
