package httpserver

import "net/http"

func (s *Server) adminMux() *http.ServeMux {
	mux := http.NewServeMux()
	mon := s.cfg.Monitoring

	mux.HandleFunc(mon.Health.Path, s.monitoringHandlers.HandleHealthCheck)
	if mon.Health.Path != "/healthz" {
		mux.HandleFunc("/healthz", s.monitoringHandlers.HandleHealthCheck)
	}
	mux.HandleFunc("/ready", s.monitoringHandlers.HandleReadiness)
	mux.HandleFunc("/readyz", s.monitoringHandlers.HandleReadiness)

	if mon.Metrics.Enabled {
		mux.HandleFunc(mon.Metrics.Path, s.monitoringHandlers.HandleMetrics)
		if s.opts.PrometheusHandler != nil {
			mux.Handle(mon.Metrics.Path+"/prometheus", s.opts.PrometheusHandler)
		}
	}

	mux.HandleFunc("/api/routes", s.apiHandlers.HandleRoutes)
	mux.HandleFunc("/api/linkcheck", s.apiHandlers.HandleLinkCheck)
	return mux
}
