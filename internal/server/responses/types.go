// Package responses defines API response types used by the admin handlers.
package responses

import (
	"time"

	"git.home.luguber.info/inful/coffeedocs/internal/linkverify"
	"git.home.luguber.info/inful/coffeedocs/internal/metrics"
	"git.home.luguber.info/inful/coffeedocs/internal/shell"
)

// HealthResponse represents the health check API response.
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Version   string         `json:"version"`
	Uptime    float64        `json:"uptime"`
	Content   ContentSummary `json:"content"`
}

// ContentSummary counts the entries of the current registry snapshot.
type ContentSummary struct {
	Endpoints   int `json:"endpoints"`
	Fields      int `json:"fields"`
	MenuEntries int `json:"menu_entries"`
}

// ReadyResponse represents the readiness endpoint response.
type ReadyResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// MetricsResponse represents the JSON metrics endpoint response.
type MetricsResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	metrics.StatsSnapshot
}

// RoutesResponse lists the documentation route table.
type RoutesResponse struct {
	Routes []shell.Route `json:"routes"`
}

// LinkCheckResponse wraps the most recent link verification report.
type LinkCheckResponse struct {
	Status string             `json:"status"`
	Report *linkverify.Report `json:"report"`
}

// TriggerResponse represents the response for trigger operations.
type TriggerResponse struct {
	Status string `json:"status"`
	JobID  string `json:"job_id"`
}
