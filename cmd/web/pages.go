package main

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"finitefield.org/docs-landing/internal/handlers"
	"finitefield.org/docs-landing/internal/landing"
	mw "finitefield.org/docs-landing/internal/middleware"
	"finitefield.org/docs-landing/internal/observability"
	"finitefield.org/docs-landing/internal/siteurl"
)

// sitePage describes one page rendered for every language.
type sitePage struct {
	file  string // relative to the language root; "" is the home page
	title string // translation key; "" uses the site title
	body  func(p *landing.Page, lang string) templ.Component
}

var (
	homePage     = sitePage{body: (*landing.Page).Component}
	pioneersPage = sitePage{file: "pioneers.html", title: "Pioneers", body: (*landing.Page).PioneersComponent}
	sitePages    = []sitePage{homePage, pioneersPage}
)

// homeHandler renders the landing page.
func (s *site) homeHandler(w http.ResponseWriter, r *http.Request) {
	lang, ok := s.routeLang(w, r)
	if !ok {
		return
	}
	if lang == "" && s.cfg.RedirectRoot {
		preferred := mw.Lang(r, s.cfg.DefaultLanguage)
		http.Redirect(w, r, siteurl.Page(s.cfg.BaseURL, preferred, ""), http.StatusFound)
		return
	}
	s.servePage(w, r, homePage, lang)
}

func (s *site) pioneersHandler(w http.ResponseWriter, r *http.Request) {
	lang, ok := s.routeLang(w, r)
	if !ok {
		return
	}
	s.servePage(w, r, pioneersPage, lang)
}

// languageRedirect adds the trailing slash to "/{lang}".
func (s *site) languageRedirect(w http.ResponseWriter, r *http.Request) {
	lang, ok := s.routeLang(w, r)
	if !ok {
		return
	}
	http.Redirect(w, r, siteurl.Page(s.cfg.BaseURL, lang, ""), http.StatusMovedPermanently)
}

// routeLang returns the language segment of the route, answering 404 for
// languages the site does not publish.
func (s *site) routeLang(w http.ResponseWriter, r *http.Request) (string, bool) {
	lang := chi.URLParam(r, "lang")
	if lang == "" {
		return "", true
	}
	if !s.cfg.HasLanguage(lang) {
		http.NotFound(w, r)
		return "", false
	}
	return lang, true
}

func (s *site) servePage(w http.ResponseWriter, r *http.Request, page sitePage, lang string) {
	logger := observability.FromContext(r.Context())
	data, err := s.buildPage(r.Context(), page, lang)
	if err != nil {
		logger.Error("build page", zap.String("page", page.file), zap.String("lang", lang), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Language", data.HTMLLang)
	s.render(w, r, data)
}

func (s *site) buildPage(ctx context.Context, page sitePage, lang string) (handlers.PageData, error) {
	body, err := templ.ToGoHTML(ctx, page.body(s.page, lang))
	if err != nil {
		return handlers.PageData{}, fmt.Errorf("render %q for %q: %w", page.file, lang, err)
	}
	title := ""
	if page.title != "" {
		effective := lang
		if effective == "" {
			effective = s.cfg.DefaultLanguage
		}
		title = s.bundle.T(effective, page.title)
	}
	return handlers.BuildPageData(s.cfg, s.analytics, handlers.PageInput{
		Lang:      lang,
		Page:      page.file,
		PageTitle: title,
		Path:      siteurl.Page(s.cfg.BaseURL, lang, page.file),
		Body:      body,
	}), nil
}

func (s *site) parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		"t":   s.bundle.T,
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// execute runs the base layout. In dev mode, templates are reparsed on each call.
func (s *site) execute(w io.Writer, data handlers.PageData) error {
	t := s.tmpl
	if devMode || t == nil {
		tc, err := s.parseTemplates()
		if err != nil {
			return fmt.Errorf("template parse: %w", err)
		}
		t = tc
	}
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("template exec: %w", err)
	}
	return nil
}

func (s *site) render(w http.ResponseWriter, r *http.Request, data handlers.PageData) {
	var buf bytes.Buffer
	if err := s.execute(&buf, data); err != nil {
		observability.FromContext(r.Context()).Error("render page", zap.String("path", data.Path), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
