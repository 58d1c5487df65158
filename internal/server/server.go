package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/DiceBot_Go/docs"

	"github.com/osse101/DiceBot_Go/internal/dice"
	"github.com/osse101/DiceBot_Go/internal/handler"
	"github.com/osse101/DiceBot_Go/internal/i18n"
	"github.com/osse101/DiceBot_Go/internal/metrics"
	"github.com/osse101/DiceBot_Go/internal/streak"
)

// Options holds the HTTP settings of the server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	Version        string
	DefaultLocale  string

	HistogramMaxIterations int
	HistogramWorkers       int
}

// Dependencies are the services the routes call into
type Dependencies struct {
	Evaluator handler.RollEvaluator
	Parser    *dice.Parser
	Catalog   *i18n.Catalog
	Streaks   streak.Service
	// Pinger gates /readyz; nil means always ready
	Pinger handler.Pinger
}

// Server is the HTTP API
type Server struct {
	httpServer *http.Server
	monitor    *ActivityMonitor
}

// NewServer wires the middleware stack and routes
func NewServer(opts Options, deps Dependencies) *Server {
	monitor := NewActivityMonitor()
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps, monitor),
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
		},
		monitor: monitor,
	}
}

// NewRouter builds the chi router. Middleware executes outermost first.
func NewRouter(opts Options, deps Dependencies, monitor *ActivityMonitor) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, monitor))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, monitor))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Pinger))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get(SwaggerPathPrefix+"*", httpSwagger.WrapHandler)

	rolls := handler.NewRollHandler(deps.Evaluator, deps.Catalog, deps.Streaks, opts.DefaultLocale)
	messages := handler.NewMessageHandler(deps.Streaks)
	streaks := handler.NewStreakHandler(deps.Streaks)
	histograms := handler.NewHistogramHandler(deps.Parser, opts.HistogramMaxIterations, opts.HistogramWorkers)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/roll", rolls.HandleRoll)

		r.Route("/messages", func(r chi.Router) {
			r.Post("/", messages.HandleRecord)
			r.Post("/retract", messages.HandleRetract)
			r.Post("/revise", messages.HandleRevise)
		})

		r.Get("/streaks", streaks.HandleGetStreak)
		r.Get("/histogram", histograms.HandleHistogram)
	})

	return r
}

// Start serves until Stop is called. A graceful stop is not an error.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
