package httpserver

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/coffeedocs/internal/config"
	"git.home.luguber.info/inful/coffeedocs/internal/metrics"
	"git.home.luguber.info/inful/coffeedocs/internal/server/middleware"
)

type stubRuntime struct{ stats *metrics.Stats }

func (stubRuntime) GetStartTime() time.Time           { return time.Now() }
func (stubRuntime) Ready() string                     { return "" }
func (stubRuntime) ContentCounts() (int, int, int)    { return 1, 2, 3 }
func (r stubRuntime) Snapshot() metrics.StatsSnapshot { return r.stats.Snapshot() }

func newTestServer(t *testing.T) (*Server, *metrics.Stats) {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.HTTP.Host = "127.0.0.1"
	cfg.HTTP.DocsPort = 0
	cfg.HTTP.AdminPort = 0

	stats := metrics.NewStats()
	reg := prometheus.NewRegistry()
	docs := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "<html>docs</html>")
	})
	s := New(cfg, Options{
		Docs:              docs,
		Runtime:           stubRuntime{stats: stats},
		PrometheusHandler: metrics.HTTPHandler(reg),
		Recorder:          metrics.Multi(stats, metrics.NewPrometheusRecorder(reg)),
	})
	require.NoError(t, s.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Stop(ctx)
	})
	return s, stats
}

func fetch(t *testing.T, addr net.Addr, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get("http://" + addr.String() + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestServersServeDocsAndAdmin(t *testing.T) {
	s, stats := newTestServer(t)

	resp, body := fetch(t, s.DocsAddr(), "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "<html>docs</html>", body)
	require.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	resp, body = fetch(t, s.AdminAddr(), "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, `"status":"healthy"`)

	resp, _ = fetch(t, s.AdminAddr(), "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = fetch(t, s.AdminAddr(), "/ready")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = fetch(t, s.AdminAddr(), "/api/routes")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, `"/coffee-shop-model"`)

	resp, body = fetch(t, s.AdminAddr(), "/metrics/prometheus")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, `coffeedocs_http_request_duration_seconds`)

	resp, _ = fetch(t, s.AdminAddr(), "/api/linkcheck")
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	require.GreaterOrEqual(t, stats.Snapshot().HTTPRequestsTotal, int64(7))
}

func TestStartFailsWhenPortTaken(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.HTTP.Host = "127.0.0.1"
	cfg.HTTP.DocsPort = 0
	cfg.HTTP.AdminPort = ln.Addr().(*net.TCPAddr).Port

	s := New(cfg, Options{Runtime: stubRuntime{stats: metrics.NewStats()}})
	err = s.Start(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "admin port")
	require.Nil(t, s.DocsAddr())
}

func TestStopBeforeStart(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	require.NoError(t, New(cfg, Options{}).Stop(context.Background()))
}
