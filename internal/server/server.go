// Package server exposes the clipping pipeline over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"ai-news-clipper/internal/clipper"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Runner runs the pipeline.
type Runner interface {
	Run(ctx context.Context) (*clipper.Result, error)
	RunDaily(ctx context.Context) (*clipper.Result, error)
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Handler serves the clipping endpoints.
type Handler struct {
	runner Runner
}

// NewHandler creates a handler backed by runner.
func NewHandler(runner Runner) *Handler {
	return &Handler{runner: runner}
}

// Clip runs the pipeline once.
func (h *Handler) Clip(c echo.Context) error {
	return h.respond(c, "news clipping", h.runner.Run)
}

// CronDaily runs the pipeline unless today's digest was already delivered.
func (h *Handler) CronDaily(c echo.Context) error {
	return h.respond(c, "daily news clipping", h.runner.RunDaily)
}

func (h *Handler) respond(c echo.Context, what string, run func(context.Context) (*clipper.Result, error)) error {
	ctx := c.Request().Context()
	res, err := run(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "server: run failed", "run", what, "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Success: false,
			Message: "an error occurred during " + what,
			Error:   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, res)
}

// Health processes the /healthz endpoint.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// New builds the echo instance with middleware and routes.
func New(runner Runner) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return p == "/healthz" || p == "/metrics"
		},
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			rctx := c.Request().Context()
			if v.Error == nil {
				slog.InfoContext(rctx, "server: request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				slog.ErrorContext(rctx, "server: request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	h := NewHandler(runner)
	e.GET("/api/news-clipper", h.Clip)
	e.POST("/api/news-clipper", h.Clip)
	e.GET("/api/cron-daily-news", h.CronDaily)
	e.POST("/api/cron-daily-news", h.CronDaily)
	e.GET("/healthz", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	return e
}
