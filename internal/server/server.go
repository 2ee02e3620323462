package server

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/aristath/fundplan/internal/config"
	"github.com/aristath/fundplan/internal/events"
	"github.com/aristath/fundplan/internal/metrics"
	allocationhandlers "github.com/aristath/fundplan/internal/modules/allocation/handlers"
	"github.com/aristath/fundplan/internal/modules/catalog"
	cataloghandlers "github.com/aristath/fundplan/internal/modules/catalog/handlers"
	"github.com/aristath/fundplan/internal/modules/planning"
	planninghandlers "github.com/aristath/fundplan/internal/modules/planning/handlers"
	"github.com/aristath/fundplan/internal/modules/rebalancing"
	rebalancinghandlers "github.com/aristath/fundplan/internal/modules/rebalancing/handlers"
	"github.com/aristath/fundplan/internal/modules/tools"
	toolshandlers "github.com/aristath/fundplan/internal/modules/tools/handlers"
	"github.com/aristath/fundplan/pkg/embedded"
)

const statusMonitorInterval = 60 * time.Second

// Config holds server configuration
type Config struct {
	Log                zerolog.Logger
	Config             *config.Config
	Bus                *events.Bus
	PlanningService    *planning.Service
	RebalancingService *rebalancing.Service
	CatalogService     *catalog.Service
	ToolsService       *tools.Service
}

// Server represents the HTTP server
type Server struct {
	router             *chi.Mux
	server             *http.Server
	cfg                *config.Config
	bus                *events.Bus
	planningService    *planning.Service
	rebalancingService *rebalancing.Service
	catalogService     *catalog.Service
	toolsService       *tools.Service
	systemHandlers     *SystemHandlers
	statusMonitor      *StatusMonitor
	log                zerolog.Logger
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	// Register common MIME types to ensure correct Content-Type headers
	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".css", "text/css")
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	systemHandlers := NewSystemHandlers(cfg.Config.Version, cfg.Log)

	s := &Server{
		router:             chi.NewRouter(),
		log:                cfg.Log.With().Str("component", "server").Logger(),
		cfg:                cfg.Config,
		bus:                cfg.Bus,
		planningService:    cfg.PlanningService,
		rebalancingService: cfg.RebalancingService,
		catalogService:     cfg.CatalogService,
		toolsService:       cfg.ToolsService,
		systemHandlers:     systemHandlers,
	}

	s.statusMonitor = NewStatusMonitor(cfg.Bus, systemHandlers, cfg.Log)

	s.setupMiddleware(cfg.Config.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Health check (before SPA routing)
	s.router.Get("/health", s.handleHealth)

	// Prometheus metrics
	s.router.Handle("/metrics", promhttp.Handler())

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		// Live event stream (websocket) - registered first so the upgrade
		// request is not swallowed by other routes
		eventsHandler := NewEventsHandler(s.bus, s.log)
		r.Get("/events", eventsHandler.ServeHTTP)

		// System monitoring
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.systemHandlers.HandleSystemStatus)
		})

		// Planning module
		planningHandler := planninghandlers.NewHandler(s.planningService, s.log)
		planningHandler.RegisterRoutes(r)

		// Rebalancing module
		rebalancingHandler := rebalancinghandlers.NewHandler(s.rebalancingService, s.log)
		rebalancingHandler.RegisterRoutes(r)

		// Strategy discovery
		strategiesHandler := allocationhandlers.NewHandler(s.log)
		strategiesHandler.RegisterRoutes(r)

		// Fund catalog
		catalogHandler := cataloghandlers.NewHandler(s.catalogService, s.log)
		catalogHandler.RegisterRoutes(r)

		// Tool launcher
		toolsHandler := toolshandlers.NewHandler(s.toolsService, s.log)
		toolsHandler.RegisterRoutes(r)
	})

	// Serve the dashboard from the embedded filesystem
	frontendFS, err := fs.Sub(embedded.Files, "static")
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to create frontend filesystem from embedded files")
		return
	}

	assetsFS, err := fs.Sub(frontendFS, "assets")
	if err != nil {
		s.log.Warn().Err(err).Msg("Frontend assets directory not found in embedded files")
	} else {
		fileServer := http.FileServer(http.FS(assetsFS))
		assetsHandler := s.assetsHandler(fileServer)
		s.router.Handle("/assets/*", http.StripPrefix("/assets/", assetsHandler))
	}

	// Serve index.html for root and all non-API routes (SPA routing)
	s.router.Get("/", s.handleDashboard)
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api") || strings.HasPrefix(r.URL.Path, "/health") {
			http.NotFound(w, r)
			return
		}
		s.serveIndex(w, frontendFS)
	})
}

// Start starts the HTTP server and background monitors
func (s *Server) Start() error {
	if s.statusMonitor != nil {
		s.statusMonitor.Start(statusMonitorInterval)
		s.log.Info().Msg("Status monitor started")
	}

	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// assetsHandler wraps the file server to set correct MIME types
func (s *Server) assetsHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ext := filepath.Ext(r.URL.Path)

		contentType := mime.TypeByExtension(ext)
		if contentType == "" {
			switch ext {
			case ".js":
				contentType = "application/javascript"
			case ".css":
				contentType = "text/css"
			case ".json":
				contentType = "application/json"
			case ".svg":
				contentType = "image/svg+xml"
			default:
				contentType = "application/octet-stream"
			}
		}

		w.Header().Set("Content-Type", contentType)
		next.ServeHTTP(w, r)
	})
}

// handleDashboard serves the main dashboard HTML from the embedded
// filesystem
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	frontendFS, err := fs.Sub(embedded.Files, "static")
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to create frontend filesystem from embedded files")
		http.Error(w, "Frontend not available", http.StatusInternalServerError)
		return
	}

	s.serveIndex(w, frontendFS)
}

// serveIndex writes the embedded index.html to the response
func (s *Server) serveIndex(w http.ResponseWriter, frontendFS fs.FS) {
	indexFile, err := frontendFS.Open("index.html")
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to open embedded index.html")
		http.Error(w, "Frontend not available", http.StatusInternalServerError)
		return
	}
	defer indexFile.Close()

	data, err := io.ReadAll(indexFile)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to read embedded index.html")
		http.Error(w, "Frontend not available", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to write index.html response")
	}
}

// loggingMiddleware logs HTTP requests and records request metrics
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		metrics.HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(ww.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(r.Method).Observe(duration.Seconds())

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", duration).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
