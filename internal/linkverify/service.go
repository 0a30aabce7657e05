// Package linkverify renders every route in-process and checks that each
// internal reference resolves to a page, an anchor on that page or a static
// asset. Broken links can be published to NATS on a schedule.
package linkverify

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
	"git.home.luguber.info/inful/coffeedocs/internal/logfields"
	"git.home.luguber.info/inful/coffeedocs/internal/shell"
	"git.home.luguber.info/inful/coffeedocs/internal/site"
)

// DefaultExternalPrefixes are served by the API backend, not by this site.
var DefaultExternalPrefixes = []string{"/api/"}

// Renderer renders one page without going through HTTP.
type Renderer interface {
	Render(path string, query url.Values) (*site.Rendered, error)
}

// Options tune a VerificationService.
type Options struct {
	// Assets are URL paths that exist besides the routes.
	Assets []string
	// ExternalPrefixes are path prefixes counted as external references.
	ExternalPrefixes []string
	Logger           *slog.Logger
}

// VerificationService checks the references of every rendered page.
type VerificationService struct {
	renderer Renderer
	assets   map[string]bool
	external []string
	logger   *slog.Logger
}

// NewVerificationService returns a service verifying pages produced by r.
func NewVerificationService(r Renderer, opts Options) *VerificationService {
	s := &VerificationService{
		renderer: r,
		assets:   make(map[string]bool, len(opts.Assets)),
		external: opts.ExternalPrefixes,
		logger:   opts.Logger,
	}
	if s.external == nil {
		s.external = DefaultExternalPrefixes
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	for _, a := range opts.Assets {
		s.assets[a] = true
	}
	return s
}

type renderedPage struct {
	source string
	path   string
	doc    *Document
}

// Verify renders every route with the drawer closed and open and checks
// every extracted reference. id names the report; an empty id gets a new UUID.
func (s *VerificationService) Verify(ctx context.Context, id string) (*Report, error) {
	if id == "" {
		id = uuid.NewString()
	}
	report := &Report{ID: id, StartedAt: time.Now().UTC(), Broken: []BrokenLinkEvent{}}

	var pages []renderedPage
	ids := map[string]map[string]bool{}
	for _, route := range shell.Routes {
		for _, query := range []url.Values{nil, {shell.DrawerParam: {"open"}}} {
			if err := ctx.Err(); err != nil {
				return nil, errors.WrapError(err, errors.CategoryRuntime, "link verification canceled").Build()
			}
			out, err := s.renderer.Render(route.Path, query)
			if err != nil {
				return nil, err
			}
			doc, err := ExtractFromReader(bytes.NewReader(out.Body))
			if err != nil {
				return nil, err
			}
			source := route.Path
			if len(query) > 0 {
				source += "?" + query.Encode()
			}
			pages = append(pages, renderedPage{source: source, path: route.Path, doc: doc})
			if query == nil {
				ids[route.Path] = doc.IDs
			}
		}
	}

	for _, p := range pages {
		for _, link := range p.doc.Links {
			if !ShouldVerifyLink(link) {
				continue
			}
			report.Checked++
			if !link.IsInternal {
				report.External++
				continue
			}
			reason, external := s.resolve(p.path, link.URL, ids)
			if external {
				report.External++
				continue
			}
			if reason != "" {
				report.Broken = append(report.Broken, BrokenLinkEvent{
					ReportID:  report.ID,
					URL:       link.URL,
					Source:    p.source,
					Tag:       link.Tag,
					Attribute: link.Attribute,
					Reason:    reason,
					Timestamp: time.Now().UTC(),
				})
			}
		}
	}
	report.Pages = len(pages)
	report.Duration = time.Since(report.StartedAt)

	s.logger.Info("Link verification finished",
		logfields.JobID(report.ID),
		logfields.Count(report.Checked),
		slog.Int("broken", len(report.Broken)),
		logfields.DurationMS(float64(report.Duration.Microseconds())/1000))
	return report, nil
}

// resolve returns why ref, found on the page at source, is broken, or
// external=true when the reference leaves the site.
func (s *VerificationService) resolve(source, ref string, ids map[string]map[string]bool) (reason string, external bool) {
	u, err := url.Parse(ref)
	if err != nil {
		return "unparseable reference", false
	}
	target := (&url.URL{Path: source}).ResolveReference(u)
	for _, prefix := range s.external {
		if strings.HasPrefix(target.Path, prefix) {
			return "", true
		}
	}
	if s.assets[target.Path] {
		return "", false
	}
	if _, ok := shell.Dispatch(target.Path); !ok {
		return "no page at " + target.Path, false
	}
	if target.Fragment != "" && !ids[shell.CleanPath(target.Path)][target.Fragment] {
		return "missing anchor #" + target.Fragment, false
	}
	return "", false
}
