// Package http is the inbound HTTP adapter: the REST API generated from api/openapi.yml,
// the WebSocket event stream, Prometheus metrics and API documentation, all served by echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"barista/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds what NewRouter wires together.
type RouterConfig struct {
	Server     *Server
	Stream     *StreamHandler
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Logger     *slog.Logger
}

// NewRouter builds the echo instance with every route and middleware installed.
func NewRouter(ctx context.Context, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger.With("component", "http")

	doc, err := loadAPIDoc(ctx)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	validationDoc, err := loadAPIDoc(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := requestValidator(validationDoc)
	if err != nil {
		return nil, err
	}

	metrics, err := newHTTPMetrics(cfg.Registerer)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(metrics.middleware())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.DebugContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	}))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/openapi.json", openAPIHandler(doc))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/api/v1/stream", cfg.Stream.Handle)

	servers.RegisterHandlers(e, cfg.Server)

	return e, nil
}
