// Package site turns requests into complete HTML documents: it dispatches the
// path through the shell, composes the page from the current registry
// snapshot and executes the embedded templates.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/coffeedocs/internal/content"
	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
	"git.home.luguber.info/inful/coffeedocs/internal/logfields"
	"git.home.luguber.info/inful/coffeedocs/internal/metrics"
	"git.home.luguber.info/inful/coffeedocs/internal/page"
	"git.home.luguber.info/inful/coffeedocs/internal/shell"
)

const notFoundLabel = "not_found"

// Rendered is one executed page.
type Rendered struct {
	Path   string
	Page   content.PageID
	Status int
	ETag   string
	Body   []byte
}

// Site serves the documentation pages and their static assets.
type Site struct {
	store    *content.Store
	composer *page.Composer
	tmpl     *template.Template
	assets   fs.FS
	shell    shell.Options
	lang     string
	recorder metrics.Recorder
	logger   *slog.Logger
	errs     *errors.HTTPErrorAdapter
}

// Option configures a Site.
type Option func(*Site)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Site) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Site) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithShell sets the app bar title and drawer width.
func WithShell(opts shell.Options) Option {
	return func(s *Site) { s.shell = opts }
}

// WithLanguage sets the document language tag.
func WithLanguage(lang string) Option {
	return func(s *Site) {
		if lang != "" {
			s.lang = lang
		}
	}
}

// document is the root value handed to the layout template.
type document struct {
	shell.View
	Lang   string
	Static string
}

// New parses the embedded templates and returns a site serving store.
func New(store *content.Store, composer *page.Composer, opts ...Option) (*Site, error) {
	s := &Site{
		store:    store,
		composer: composer,
		assets:   assets(),
		lang:     "en",
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.errs = errors.NewHTTPErrorAdapter(s.logger)

	tmpl, err := template.New("site").Funcs(template.FuncMap{
		// css passes computed shell geometry through unescaped.
		"css": func(v string) template.CSS { return template.CSS(v) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to parse templates").Build()
	}
	s.tmpl = tmpl
	return s, nil
}

// Render executes the page served at path with the drawer state taken from query.
// Unmatched paths render the not-found page with status 404.
func (s *Site) Render(path string, query url.Values) (*Rendered, error) {
	start := time.Now()
	reg := s.store.Load()
	path = shell.CleanPath(path)

	status := http.StatusOK
	id, ok := shell.Dispatch(path)
	var p *page.Page
	if ok {
		var err error
		if p, err = s.composer.Build(reg, id); err != nil {
			return nil, err
		}
	} else {
		status = http.StatusNotFound
		p = s.composer.NotFound(path)
	}

	view := shell.Mount(p, path, shell.ParseDrawer(query), reg.Menu(), s.shell)
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "layout", document{View: view, Lang: s.lang, Static: StaticPrefix}); err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to execute layout").
			WithContext("path", path).
			Build()
	}
	s.recorder.ObservePageRender(pageLabel(id), time.Since(start))

	body := buf.Bytes()
	return &Rendered{
		Path:   path,
		Page:   id,
		Status: status,
		ETag:   `"` + mdfp.CalculateFingerprintFromParts(fmt.Sprintf("status: %d", status), string(body)) + `"`,
		Body:   body,
	}, nil
}

// ServeHTTP serves pages and the assets under StaticPrefix.
func (s *Site) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if strings.HasPrefix(r.URL.Path, StaticPrefix+"/") && s.serveStatic(w, r) {
		return
	}
	s.servePage(w, r)
}

// serveStatic reports false when the asset does not exist.
func (s *Site) serveStatic(w http.ResponseWriter, r *http.Request) bool {
	name := strings.TrimPrefix(r.URL.Path, StaticPrefix+"/")
	info, err := fs.Stat(s.assets, name)
	if name == "" || err != nil || info.IsDir() {
		return false
	}
	if cc := cacheControlFor(name); cc != "" {
		w.Header().Set("Cache-Control", cc)
	}
	http.ServeFileFS(w, r, s.assets, name)
	return true
}

func (s *Site) servePage(w http.ResponseWriter, r *http.Request) {
	out, err := s.Render(r.URL.Path, r.URL.Query())
	if err != nil {
		id, _ := shell.Dispatch(r.URL.Path)
		s.recorder.IncPageResult(pageLabel(id), metrics.ResultError)
		s.errs.Log(r, err)
		code := s.errs.StatusCodeFor(err)
		http.Error(w, http.StatusText(code), code)
		return
	}

	label := pageLabel(out.Page)
	w.Header().Set("ETag", out.ETag)
	w.Header().Set("Cache-Control", "no-cache")
	if out.Status == http.StatusOK && etagMatches(r.Header.Get("If-None-Match"), out.ETag) {
		s.recorder.IncPageResult(label, metrics.ResultNotModified)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	result := metrics.ResultOK
	if out.Status == http.StatusNotFound {
		result = metrics.ResultNotFound
		s.logger.Debug("No route for path", logfields.Path(out.Path))
	}
	s.recorder.IncPageResult(label, result)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(out.Status)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(out.Body); err != nil {
		s.logger.Warn("Failed to write page", logfields.Path(out.Path), logfields.Error(err))
	}
}

// etagMatches implements the weak comparison of If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

func pageLabel(id content.PageID) string {
	if id == "" {
		return notFoundLabel
	}
	return string(id)
}
