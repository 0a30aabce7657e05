package httpserver

import "net/http"

func (s *Server) docsHandler() http.Handler {
	if s.opts.Docs == nil {
		return http.NotFoundHandler()
	}
	return s.opts.Docs
}
