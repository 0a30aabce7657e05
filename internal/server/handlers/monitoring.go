package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
	"git.home.luguber.info/inful/coffeedocs/internal/metrics"
	"git.home.luguber.info/inful/coffeedocs/internal/server/responses"
	"git.home.luguber.info/inful/coffeedocs/internal/version"
)

// MonitoringHandlers contains monitoring-related HTTP handlers.
type MonitoringHandlers struct {
	runtime      RuntimeInterface
	errorAdapter *errors.HTTPErrorAdapter
}

// RuntimeInterface is what the monitoring handlers need from the running service.
type RuntimeInterface interface {
	GetStartTime() time.Time
	// Ready returns "" when the docs server can serve pages, or the reason it cannot.
	Ready() string
	ContentCounts() (endpoints, fields, menuEntries int)
	Snapshot() metrics.StatsSnapshot
}

// NewMonitoringHandlers creates a new monitoring handlers instance.
func NewMonitoringHandlers(runtime RuntimeInterface) *MonitoringHandlers {
	return &MonitoringHandlers{
		runtime:      runtime,
		errorAdapter: errors.NewHTTPErrorAdapter(slog.Default()),
	}
}

// HandleHealthCheck handles the health check endpoint.
func (h *MonitoringHandlers) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(h.errorAdapter, w, r, http.MethodGet) {
		return
	}

	endpoints, fields, menu := h.runtime.ContentCounts()
	health := &responses.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   version.Version,
		Uptime:    time.Since(h.runtime.GetStartTime()).Seconds(),
		Content:   responses.ContentSummary{Endpoints: endpoints, Fields: fields, MenuEntries: menu},
	}

	if err := writeJSONPretty(w, r, http.StatusOK, health); err != nil {
		internalErr := errors.WrapError(err, errors.CategoryInternal, "failed to write health response").
			Build()
		h.errorAdapter.WriteErrorResponse(w, r, internalErr)
	}
}

// HandleReadiness answers 200 once pages can be served and 503 before.
func (h *MonitoringHandlers) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(h.errorAdapter, w, r, http.MethodGet) {
		return
	}
	resp := responses.ReadyResponse{Status: "ready"}
	status := http.StatusOK
	if reason := h.runtime.Ready(); reason != "" {
		resp = responses.ReadyResponse{Status: "not_ready", Reason: reason}
		status = http.StatusServiceUnavailable
	}
	if err := writeJSONPretty(w, r, status, resp); err != nil {
		slog.Error("failed to write readiness response", slog.Any("error", err))
	}
}

// HandleMetrics handles the JSON metrics summary endpoint.
func (h *MonitoringHandlers) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(h.errorAdapter, w, r, http.MethodGet) {
		return
	}

	resp := &responses.MetricsResponse{
		Status:        "ok",
		Timestamp:     time.Now().UTC(),
		StatsSnapshot: h.runtime.Snapshot(),
	}

	if err := writeJSONPretty(w, r, http.StatusOK, resp); err != nil {
		internalErr := errors.WrapError(err, errors.CategoryInternal, "failed to write metrics response").
			Build()
		h.errorAdapter.WriteErrorResponse(w, r, internalErr)
	}
}
