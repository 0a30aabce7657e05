package logfields

import "log/slog"

// Canonical log field names shared by all packages.
const (
	KeyMethod     = "method"
	KeyPath       = "path"
	KeyStatus     = "status"
	KeyPage       = "page"
	KeyRoute      = "route"
	KeyRequestID  = "request_id"
	KeyUserAgent  = "user_agent"
	KeyRemoteAddr = "remote_addr"
	KeyDurationMS = "duration_ms"
	KeyFile       = "file"
	KeyURL        = "url"
	KeyServer     = "server"
	KeyPort       = "port"
	KeyCount      = "count"
	KeyJobID      = "job_id"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func Page(id string) slog.Attr        { return slog.String(KeyPage, id) }
func Route(r string) slog.Attr        { return slog.String(KeyRoute, r) }
func RequestID(id string) slog.Attr   { return slog.String(KeyRequestID, id) }
func UserAgent(ua string) slog.Attr   { return slog.String(KeyUserAgent, ua) }
func RemoteAddr(a string) slog.Attr   { return slog.String(KeyRemoteAddr, a) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Server(name string) slog.Attr    { return slog.String(KeyServer, name) }
func Port(p int) slog.Attr            { return slog.Int(KeyPort, p) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func JobID(id string) slog.Attr       { return slog.String(KeyJobID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
