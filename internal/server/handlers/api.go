package handlers

import (
	"log/slog"
	"net/http"

	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
	"git.home.luguber.info/inful/coffeedocs/internal/linkverify"
	"git.home.luguber.info/inful/coffeedocs/internal/server/responses"
	"git.home.luguber.info/inful/coffeedocs/internal/shell"
)

// LinkChecker is the part of the link verification scheduler the API exposes.
type LinkChecker interface {
	Last() (*linkverify.Report, bool)
	Trigger() string
}

// APIHandlers contains API-related HTTP handlers.
type APIHandlers struct {
	checker      LinkChecker
	errorAdapter *errors.HTTPErrorAdapter
}

// NewAPIHandlers creates a new API handlers instance. checker may be nil
// when link verification is disabled.
func NewAPIHandlers(checker LinkChecker) *APIHandlers {
	return &APIHandlers{
		checker:      checker,
		errorAdapter: errors.NewHTTPErrorAdapter(slog.Default()),
	}
}

// HandleRoutes lists the documentation routes.
func (h *APIHandlers) HandleRoutes(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(h.errorAdapter, w, r, http.MethodGet) {
		return
	}
	resp := responses.RoutesResponse{Routes: append([]shell.Route(nil), shell.Routes...)}
	if err := writeJSONPretty(w, r, http.StatusOK, resp); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r,
			errors.WrapError(err, errors.CategoryInternal, "failed to write routes response").Build())
	}
}

// HandleLinkCheck returns the last report on GET and starts a new run on POST.
func (h *APIHandlers) HandleLinkCheck(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(h.errorAdapter, w, r, http.MethodGet, http.MethodPost) {
		return
	}
	if h.checker == nil {
		h.errorAdapter.WriteErrorResponse(w, r, errors.RuntimeError("link verification is disabled").Build())
		return
	}

	var (
		status = http.StatusOK
		body   any
	)
	if r.Method == http.MethodPost {
		id := h.checker.Trigger()
		if id == "" {
			h.errorAdapter.WriteErrorResponse(w, r, errors.RuntimeError("link verification is stopped").Build())
			return
		}
		status = http.StatusAccepted
		body = responses.TriggerResponse{Status: "triggered", JobID: id}
	} else {
		report, ok := h.checker.Last()
		if !ok {
			h.errorAdapter.WriteErrorResponse(w, r, errors.NotFoundError("no link verification has run yet").Build())
			return
		}
		result := "ok"
		if !report.OK() {
			result = "broken_links"
		}
		body = responses.LinkCheckResponse{Status: result, Report: report}
	}

	if err := writeJSONPretty(w, r, status, body); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r,
			errors.WrapError(err, errors.CategoryInternal, "failed to write link check response").Build())
	}
}
