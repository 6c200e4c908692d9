package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/talx-hub/point-ledger/internal/api/middlewares"
	"github.com/talx-hub/point-ledger/internal/metrics"
	"github.com/talx-hub/point-ledger/internal/model"
	"github.com/talx-hub/point-ledger/internal/service/config"
)

type CustomRouter struct {
	router *chi.Mux
	logger *slog.Logger
	cfg    *config.Config
}

func New(cfg *config.Config, log *slog.Logger) *CustomRouter {
	if log == nil {
		log = slog.Default()
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	router := &CustomRouter{
		router: chi.NewRouter(),
		logger: log,
		cfg:    cfg,
	}

	return router
}

type PointHandler interface {
	GetPoint(w http.ResponseWriter, r *http.Request)
	GetHistories(w http.ResponseWriter, r *http.Request)
	Charge(w http.ResponseWriter, r *http.Request)
	Use(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
}

type Handler interface {
	PointHandler
	HealthHandler
}

func (cr *CustomRouter) SetRouter(h Handler) {
	origins := cr.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	cr.router.Use(middleware.RequestID)
	cr.router.Use(middleware.RealIP)
	cr.router.Use(middlewares.RequestLogger(cr.logger))
	cr.router.Use(middleware.Recoverer)
	cr.router.Use(metrics.InstrumentHandler)
	cr.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", model.HeaderContentType, middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	cr.router.Route("/point/{id}", func(r chi.Router) {
		r.Get("/", h.GetPoint)
		r.Get("/histories", h.GetHistories)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType(model.ContentTypeJSON))
			r.Patch("/charge", h.Charge)
			r.Patch("/use", h.Use)
		})
	})
	cr.router.Get("/ping", h.Ping)
	cr.router.Method(http.MethodGet, "/metrics", metrics.Handler())

	cr.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w,
			http.StatusText(http.StatusMethodNotAllowed),
			http.StatusMethodNotAllowed)
	})
}

func (cr *CustomRouter) GetRouter() *chi.Mux {
	return cr.router
}
