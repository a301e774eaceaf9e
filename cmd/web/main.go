package main

import (
	"context"
	"errors"
	"flag"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"finitefield.org/docs-landing/internal/handlers"
	"finitefield.org/docs-landing/internal/i18n"
	"finitefield.org/docs-landing/internal/landing"
	"finitefield.org/docs-landing/internal/markdown"
	mw "finitefield.org/docs-landing/internal/middleware"
	"finitefield.org/docs-landing/internal/observability"
	"finitefield.org/docs-landing/internal/siteconfig"
)

var (
	templatesDir = "templates"
	staticDir    = "static"
	localesDir   = "locales"
	// devMode is set in main() from LANDING_DEV; templates are reparsed per request.
	devMode bool
)

// site bundles the read-only state shared by every request.
type site struct {
	cfg       *siteconfig.Config
	bundle    *i18n.Bundle
	page      *landing.Page
	analytics handlers.Analytics
	tmpl      *template.Template
}

func newSite(cfg *siteconfig.Config, bundle *i18n.Bundle) *site {
	return &site{
		cfg:       cfg,
		bundle:    bundle,
		page:      landing.New(cfg, bundle, markdown.New()),
		analytics: handlers.LoadAnalytics(cfg),
	}
}

func main() {
	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	logger, err := observability.NewLogger()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var (
		addr       string
		configPath string
		exportDir  string
	)
	flag.StringVar(&addr, "addr", ":"+getEnv("PORT", "8080"), "HTTP listen address")
	flag.StringVar(&configPath, "config", getEnv("LANDING_SITE_CONFIG", "siteConfig.yml"), "site configuration file")
	flag.StringVar(&templatesDir, "templates", templatesDir, "templates directory")
	flag.StringVar(&staticDir, "static", staticDir, "static assets directory")
	flag.StringVar(&localesDir, "locales", localesDir, "locale dictionaries directory")
	flag.StringVar(&exportDir, "export", "", "write the static site into this directory and exit")
	flag.Parse()

	devMode = os.Getenv("LANDING_DEV") != ""

	cfg, err := siteconfig.Load(configPath)
	if err != nil {
		logger.Fatal("load site config", zap.Error(err))
	}
	bundle, err := i18n.Load(localesDir, cfg.DefaultLanguage, cfg.Languages)
	if err != nil {
		logger.Fatal("load locales", zap.Error(err))
	}

	s := newSite(cfg, bundle)
	if !devMode || exportDir != "" {
		tmpl, err := s.parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		s.tmpl = tmpl
	}

	if exportDir != "" {
		ctx := observability.WithLogger(context.Background(), logger)
		n, err := exportSite(ctx, s, exportDir)
		if err != nil {
			logger.Fatal("export site", zap.Error(err))
		}
		logger.Info("site exported", zap.String("dir", exportDir), zap.Int("pages", n))
		return
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(s, logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()
	logger.Info("web listening",
		zap.String("addr", addr),
		zap.String("base_url", cfg.BaseURL),
		zap.Strings("languages", cfg.Languages),
		zap.Bool("dev_mode", devMode),
	)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newRouter(s *site, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	base := strings.TrimSuffix(s.cfg.BaseURL, "/")
	routes := func(r chi.Router) {
		r.Use(mw.Locale(s.bundle))
		r.Use(mw.VaryLocale)

		assets := http.StripPrefix(base, mw.AssetsWithCache(staticDir))
		r.Handle("/img/*", assets)
		r.Handle("/css/*", assets)

		r.Get("/", s.homeHandler)
		r.Get("/index.html", s.homeHandler)
		r.Get("/pioneers.html", s.pioneersHandler)
		r.Get("/{lang}", s.languageRedirect)
		r.Get("/{lang}/", s.homeHandler)
		r.Get("/{lang}/index.html", s.homeHandler)
		r.Get("/{lang}/pioneers.html", s.pioneersHandler)
	}
	if base == "" {
		r.Group(routes)
	} else {
		r.Route(base, routes)
	}
	return r
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
