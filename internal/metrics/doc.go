// Package metrics records coffeedocs serving metrics.
//
// Components receive a Recorder and never check whether metrics are
// enabled: NoopRecorder is the default, Stats keeps the in-process totals
// behind the JSON metrics endpoint and PrometheusRecorder exports the same
// events for scraping. Multi fans one event out to several recorders.
//
//	rec := metrics.Multi(stats, metrics.NewPrometheusRecorder(reg))
//	handler := site.New(store, composer, site.WithRecorder(rec))
package metrics
