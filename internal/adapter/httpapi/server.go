// Package httpapi exposes the analytics engine and lot CRUD over a JSON
// REST API.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/simaogato/investment-tracker/internal/domain"
	"github.com/simaogato/investment-tracker/internal/usecase/history"
	"github.com/simaogato/investment-tracker/internal/usecase/investment"
	"github.com/simaogato/investment-tracker/internal/usecase/portfolio"
	"github.com/simaogato/investment-tracker/internal/usecase/refresh"
)

// Config holds server configuration
type Config struct {
	Port int
	// APIToken enables bearer-token auth when non-empty
	APIToken string
	Log      zerolog.Logger

	InvestmentService *investment.Service
	PortfolioService  *portfolio.Service
	RefreshService    *refresh.Service
	HistoryService    *history.Service
	SettingsRepo      domain.SettingsRepository

	// OnSettingsChange is invoked after settings are saved, so
	// schedule-like collaborators can re-arm themselves. Optional.
	OnSettingsChange func(domain.Settings)
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger

	investments *investment.Service
	portfolio   *portfolio.Service
	refresh     *refresh.Service
	history     *history.Service
	settings    domain.SettingsRepository

	onSettingsChange func(domain.Settings)
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:      chi.NewRouter(),
		log:         cfg.Log.With().Str("component", "httpapi").Logger(),
		investments: cfg.InvestmentService,
		portfolio:   cfg.PortfolioService,
		refresh:     cfg.RefreshService,
		history:     cfg.HistoryService,
		settings:    cfg.SettingsRepo,

		onSettingsChange: cfg.OnSettingsChange,
	}

	s.setupMiddleware(cfg.APIToken)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware(apiToken string) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if apiToken != "" {
		s.router.Use(authMiddleware(apiToken))
	}
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/investments", func(r chi.Router) {
			r.Get("/", s.handleListInvestments)
			r.Post("/", s.handleCreateInvestment)
			r.Get("/{id}", s.handleGetInvestment)
			r.Put("/{id}", s.handleUpdateInvestment)
			r.Delete("/{id}", s.handleDeleteInvestment)
		})

		r.Get("/portfolio", s.handlePortfolio)
		r.Get("/breakdown/category", s.handleCategoryBreakdown)
		r.Get("/breakdown/risk", s.handleRiskBreakdown)
		r.Get("/scenarios", s.handleScenarios)
		r.Get("/history", s.handleHistory)
		r.Post("/refresh", s.handleRefresh)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleUpdateSettings)
	})
}

// Handler returns the configured router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
