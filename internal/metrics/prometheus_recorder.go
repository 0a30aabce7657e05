package metrics

import (
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "coffeedocs"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	renderDuration  *prom.HistogramVec
	pageResults     *prom.CounterVec
	httpDuration    *prom.HistogramVec
	contentReloads  *prom.CounterVec
	registryEntries *prom.GaugeVec
	linkCheck       prom.Histogram
	brokenLinks     prom.Gauge
}

// NewPrometheusRecorder constructs the collectors and registers them with reg.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "page_render_duration_seconds",
			Help:      "Time spent composing and executing a page template",
			Buckets:   prom.DefBuckets,
		}, []string{"page"}),
		pageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "page_results_total",
			Help:      "Served pages by outcome",
		}, []string{"page", "result"}),
		httpDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by server and status code",
			Buckets:   prom.DefBuckets,
		}, []string{"server", "code"}),
		contentReloads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "content_reloads_total",
			Help:      "Content file reloads by result",
		}, []string{"result"}),
		registryEntries: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_entries",
			Help:      "Entries in the served content registry",
		}, []string{"kind"}),
		linkCheck: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "link_check_duration_seconds",
			Help:      "Duration of a full link check",
			Buckets:   prom.DefBuckets,
		}),
		brokenLinks: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "broken_links",
			Help:      "Broken links found by the last link check",
		}),
	}
	reg.MustRegister(pr.renderDuration, pr.pageResults, pr.httpDuration, pr.contentReloads,
		pr.registryEntries, pr.linkCheck, pr.brokenLinks)
	return pr
}

func (p *PrometheusRecorder) ObservePageRender(page string, d time.Duration) {
	p.renderDuration.WithLabelValues(page).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPageResult(page string, result ResultLabel) {
	p.pageResults.WithLabelValues(page, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveHTTPRequest(server string, status int, d time.Duration) {
	p.httpDuration.WithLabelValues(server, strconv.Itoa(status)).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncContentReload(success bool) {
	res := "failed"
	if success {
		res = "success"
	}
	p.contentReloads.WithLabelValues(res).Inc()
}

func (p *PrometheusRecorder) SetRegistryEntries(kind string, n int) {
	p.registryEntries.WithLabelValues(kind).Set(float64(n))
}

func (p *PrometheusRecorder) ObserveLinkCheck(d time.Duration, broken int) {
	p.linkCheck.Observe(d.Seconds())
	p.brokenLinks.Set(float64(broken))
}
