package di

import (
	"context"

	"go.uber.org/zap"

	commands "socialgraph/application/commands"
	cmdbus "socialgraph/application/commands/bus"
	command_handlers "socialgraph/application/commands/handlers"
	"socialgraph/application/ports"
	"socialgraph/application/queries"
	querybus "socialgraph/application/queries/bus"
	query_handlers "socialgraph/application/queries/handlers"
	"socialgraph/application/services"
	domainconfig "socialgraph/domain/config"
	"socialgraph/domain/core/validators"
	"socialgraph/infrastructure/config"
	"socialgraph/infrastructure/dataset"
	"socialgraph/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	DomainConfig *domainconfig.DomainConfig
	Graphs       ports.GraphProvider
	Dataset      ports.DatasetSource
	Builder      *services.GraphBuilder
	Cache        querybus.Cache
	CommandBus   *cmdbus.CommandBus
	QueryBus     *querybus.QueryBus
	Metrics      *observability.Metrics
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideDomainConfig creates the domain configuration
func ProvideDomainConfig() *domainconfig.DomainConfig {
	return domainconfig.DefaultDomainConfig()
}

// ProvideRecordValidator creates the input record validator
func ProvideRecordValidator() *validators.RecordValidator {
	return validators.NewRecordValidator()
}

// ProvideGraphProvider creates the atomic graph holder
func ProvideGraphProvider() ports.GraphProvider {
	return NewGraphHolder()
}

// ProvideDatasetSource creates the file-backed dataset source
func ProvideDatasetSource(cfg *config.Config, logger *zap.Logger) ports.DatasetSource {
	return dataset.NewFileSource(cfg.DatasetPath, logger)
}

// ProvideGraphBuilder creates the graph builder service
func ProvideGraphBuilder(validator *validators.RecordValidator, logger *zap.Logger) *services.GraphBuilder {
	return services.NewGraphBuilder(validator, logger)
}

// ProvidePostFilter creates the post filter service
func ProvidePostFilter(logger *zap.Logger) *services.PostFilter {
	return services.NewPostFilter(logger)
}

// ProvidePostRanker creates the post ranker service
func ProvidePostRanker(logger *zap.Logger) *services.PostRanker {
	return services.NewPostRanker(logger)
}

// ProvideInMemoryCache creates the query result cache
func ProvideInMemoryCache() querybus.Cache {
	return NewInMemoryCache()
}

// ProvideMetrics creates the Prometheus metrics bundle
func ProvideMetrics() *observability.Metrics {
	return observability.NewMetrics()
}

// ProvideQueryBus creates the query bus with all handlers registered behind
// the caching middleware
func ProvideQueryBus(
	cfg *config.Config,
	graphs ports.GraphProvider,
	filter *services.PostFilter,
	ranker *services.PostRanker,
	domainCfg *domainconfig.DomainConfig,
	cache querybus.Cache,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	qb := querybus.NewQueryBus()
	caching := querybus.NewCachingMiddleware(cache, cfg.CacheTTLSeconds)

	filterHandler := query_handlers.NewFilterPostsHandler(graphs, filter, logger)
	rankHandler := query_handlers.NewRankPostsHandler(graphs, ranker, logger)
	graphDataHandler := query_handlers.NewGetGraphDataHandler(graphs, ranker, domainCfg, logger)
	wordCloudHandler := query_handlers.NewGetWordCloudTextHandler(graphs, filter, logger)

	registrations := []struct {
		query   querybus.Query
		handler querybus.QueryHandler
	}{
		{queries.FilterPostsQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, q querybus.Query) (interface{}, error) {
			return filterHandler.Handle(ctx, q.(queries.FilterPostsQuery))
		})},
		{queries.RankPostsQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, q querybus.Query) (interface{}, error) {
			return rankHandler.Handle(ctx, q.(queries.RankPostsQuery))
		})},
		{queries.GetGraphDataQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, q querybus.Query) (interface{}, error) {
			return graphDataHandler.Handle(ctx, q.(queries.GetGraphDataQuery))
		})},
		{queries.GetWordCloudTextQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, q querybus.Query) (interface{}, error) {
			return wordCloudHandler.Handle(ctx, q.(queries.GetWordCloudTextQuery))
		})},
	}

	for _, reg := range registrations {
		if err := qb.Register(reg.query, caching.Wrap(reg.handler)); err != nil {
			return nil, err
		}
	}

	return qb, nil
}

// ProvideCommandBus creates the command bus with the rebuild handler
// registered
func ProvideCommandBus(
	source ports.DatasetSource,
	builder *services.GraphBuilder,
	graphs ports.GraphProvider,
	cache querybus.Cache,
	metrics *observability.Metrics,
	logger *zap.Logger,
) (*cmdbus.CommandBus, error) {
	cb := cmdbus.NewCommandBus()

	rebuildHandler := command_handlers.NewRebuildGraphHandler(source, builder, graphs, cache, metrics, logger)

	err := cb.Register(commands.RebuildGraphCommand{}, cmdbus.CommandHandlerFunc(func(ctx context.Context, _ cmdbus.Command) error {
		return rebuildHandler.Handle(ctx)
	}))
	if err != nil {
		return nil, err
	}

	return cb, nil
}
