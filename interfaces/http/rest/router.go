package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	cmdbus "socialgraph/application/commands/bus"
	"socialgraph/application/ports"
	querybus "socialgraph/application/queries/bus"
	domainconfig "socialgraph/domain/config"
	"socialgraph/infrastructure/config"
	"socialgraph/interfaces/http/rest/handlers"
	"socialgraph/interfaces/http/rest/middleware"
	"socialgraph/pkg/common"
	pkgerrors "socialgraph/pkg/errors"
	"socialgraph/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	commandBus *cmdbus.CommandBus
	queryBus   *querybus.QueryBus
	graphs     ports.GraphProvider
	domainCfg  *domainconfig.DomainConfig
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *cmdbus.CommandBus,
	queryBus *querybus.QueryBus,
	graphs ports.GraphProvider,
	domainCfg *domainconfig.DomainConfig,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		graphs:     graphs,
		domainCfg:  domainCfg,
		metrics:    metrics,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.cfg.EnableMetrics {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	errorHandler := pkgerrors.NewErrorHandler(rt.logger, !rt.cfg.IsProduction())

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		postHandler := handlers.NewPostHandler(rt.queryBus, rt.domainCfg, errorHandler, rt.logger)
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postHandler.FilterPosts)
			r.Get("/top", postHandler.TopPosts)
		})

		graphHandler := handlers.NewGraphHandler(rt.queryBus, rt.domainCfg, errorHandler, rt.logger)
		r.Get("/graph-data", graphHandler.GetGraphData)

		wordCloudHandler := handlers.NewWordCloudHandler(rt.queryBus, errorHandler, rt.logger)
		r.Get("/wordcloud", wordCloudHandler.GetWordCloudText)

		adminHandler := handlers.NewAdminHandler(rt.commandBus, errorHandler, rt.logger)
		r.Post("/admin/reload", adminHandler.ReloadDataset)
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// readinessCheck reports ready once a graph build has completed
func (rt *Router) readinessCheck(w http.ResponseWriter, r *http.Request) {
	if _, err := rt.graphs.Current(); err != nil {
		common.RespondError(w, http.StatusServiceUnavailable, "NOT_READY", "graph not built yet")
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
