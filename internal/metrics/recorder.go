package metrics

import "time"

// ResultLabel enumerates page outcomes for counters.
type ResultLabel string

const (
	ResultOK          ResultLabel = "ok"
	ResultNotModified ResultLabel = "not_modified"
	ResultNotFound    ResultLabel = "not_found"
	ResultError       ResultLabel = "error"
)

// Recorder defines observability hooks for page serving, content reloads
// and link checks. Implementations must be safe for concurrent use.
type Recorder interface {
	ObservePageRender(page string, d time.Duration)
	IncPageResult(page string, result ResultLabel)
	ObserveHTTPRequest(server string, status int, d time.Duration)
	IncContentReload(success bool)
	SetRegistryEntries(kind string, n int)
	ObserveLinkCheck(d time.Duration, broken int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObservePageRender(string, time.Duration)       {}
func (NoopRecorder) IncPageResult(string, ResultLabel)             {}
func (NoopRecorder) ObserveHTTPRequest(string, int, time.Duration) {}
func (NoopRecorder) IncContentReload(bool)                         {}
func (NoopRecorder) SetRegistryEntries(string, int)                {}
func (NoopRecorder) ObserveLinkCheck(time.Duration, int)           {}

type multi []Recorder

// Multi returns a recorder forwarding every event to each of recs. Nil entries are skipped.
func Multi(recs ...Recorder) Recorder {
	out := make(multi, 0, len(recs))
	for _, r := range recs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (m multi) ObservePageRender(page string, d time.Duration) {
	for _, r := range m {
		r.ObservePageRender(page, d)
	}
}

func (m multi) IncPageResult(page string, result ResultLabel) {
	for _, r := range m {
		r.IncPageResult(page, result)
	}
}

func (m multi) ObserveHTTPRequest(server string, status int, d time.Duration) {
	for _, r := range m {
		r.ObserveHTTPRequest(server, status, d)
	}
}

func (m multi) IncContentReload(success bool) {
	for _, r := range m {
		r.IncContentReload(success)
	}
}

func (m multi) SetRegistryEntries(kind string, n int) {
	for _, r := range m {
		r.SetRegistryEntries(kind, n)
	}
}

func (m multi) ObserveLinkCheck(d time.Duration, broken int) {
	for _, r := range m {
		r.ObserveLinkCheck(d, broken)
	}
}
