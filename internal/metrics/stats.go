package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Stats keeps running totals for the JSON metrics endpoint.
type Stats struct {
	httpRequests atomic.Int64
	pagesServed  atomic.Int64
	notFound     atomic.Int64
	renderErrors atomic.Int64
	reloads      atomic.Int64
	reloadErrors atomic.Int64
	lastRenderNS atomic.Int64
	lastCheckNS  atomic.Int64
	brokenLinks  atomic.Int64

	mu      sync.Mutex
	entries map[string]int
}

// NewStats returns empty totals.
func NewStats() *Stats {
	return &Stats{entries: map[string]int{}}
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	HTTPRequestsTotal   int64          `json:"http_requests_total"`
	PagesServedTotal    int64          `json:"pages_served_total"`
	NotFoundTotal       int64          `json:"not_found_total"`
	RenderErrorsTotal   int64          `json:"render_errors_total"`
	ContentReloads      int64          `json:"content_reloads_total"`
	ContentReloadErrors int64          `json:"content_reload_errors_total"`
	LastRenderMillis    float64        `json:"last_render_ms"`
	LastLinkCheckMillis float64        `json:"last_link_check_ms"`
	BrokenLinks         int64          `json:"broken_links"`
	RegistryEntries     map[string]int `json:"registry_entries"`
}

func (s *Stats) ObservePageRender(_ string, d time.Duration) { s.lastRenderNS.Store(int64(d)) }

func (s *Stats) IncPageResult(_ string, result ResultLabel) {
	switch result {
	case ResultOK, ResultNotModified:
		s.pagesServed.Add(1)
	case ResultNotFound:
		s.notFound.Add(1)
	case ResultError:
		s.renderErrors.Add(1)
	}
}

func (s *Stats) ObserveHTTPRequest(string, int, time.Duration) { s.httpRequests.Add(1) }

func (s *Stats) IncContentReload(success bool) {
	s.reloads.Add(1)
	if !success {
		s.reloadErrors.Add(1)
	}
}

func (s *Stats) SetRegistryEntries(kind string, n int) {
	s.mu.Lock()
	s.entries[kind] = n
	s.mu.Unlock()
}

func (s *Stats) ObserveLinkCheck(d time.Duration, broken int) {
	s.lastCheckNS.Store(int64(d))
	s.brokenLinks.Store(int64(broken))
}

// Snapshot copies the current totals.
func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	entries := make(map[string]int, len(s.entries))
	for k, v := range s.entries {
		entries[k] = v
	}
	s.mu.Unlock()
	return StatsSnapshot{
		HTTPRequestsTotal:   s.httpRequests.Load(),
		PagesServedTotal:    s.pagesServed.Load(),
		NotFoundTotal:       s.notFound.Load(),
		RenderErrorsTotal:   s.renderErrors.Load(),
		ContentReloads:      s.reloads.Load(),
		ContentReloadErrors: s.reloadErrors.Load(),
		LastRenderMillis:    float64(s.lastRenderNS.Load()) / float64(time.Millisecond),
		LastLinkCheckMillis: float64(s.lastCheckNS.Load()) / float64(time.Millisecond),
		BrokenLinks:         s.brokenLinks.Load(),
		RegistryEntries:     entries,
	}
}
