package linkverify

import "time"

// BrokenLinkEvent represents a broken link discovered during verification.
// It is published to NATS for downstream processing.
type BrokenLinkEvent struct {
	ReportID  string    `json:"report_id"`
	URL       string    `json:"url"`
	Source    string    `json:"source"`
	Tag       string    `json:"tag"`
	Attribute string    `json:"attribute"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// Report is the result of one verification run.
type Report struct {
	ID        string            `json:"id"`
	StartedAt time.Time         `json:"started_at"`
	Duration  time.Duration     `json:"duration_ns"`
	Pages     int               `json:"pages"`
	Checked   int               `json:"checked"`
	External  int               `json:"external"`
	Broken    []BrokenLinkEvent `json:"broken"`
}

// OK reports whether no broken links were found.
func (r *Report) OK() bool { return len(r.Broken) == 0 }
