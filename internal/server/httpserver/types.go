package httpserver

import (
	"log/slog"
	"net/http"

	"git.home.luguber.info/inful/coffeedocs/internal/metrics"
	"git.home.luguber.info/inful/coffeedocs/internal/server/handlers"
)

// Options configures the handlers behind the two servers.
type Options struct {
	// Docs serves the documentation pages and static assets.
	Docs http.Handler
	// Runtime feeds the health, readiness and JSON metrics endpoints.
	Runtime handlers.RuntimeInterface

	// Optional: link verification reports and triggers.
	LinkChecker handlers.LinkChecker
	// Optional: Prometheus exposition at <metrics path>/prometheus.
	PrometheusHandler http.Handler

	Recorder metrics.Recorder
	Logger   *slog.Logger
}
