package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"socialgraph/application/ports"
	querybus "socialgraph/application/queries/bus"
	"socialgraph/application/services"
	"socialgraph/pkg/observability"
)

// RebuildGraphHandler rebuilds the graph from the dataset source and swaps the
// reader-visible reference. The build happens entirely off to the side; an
// error leaves the current graph untouched.
type RebuildGraphHandler struct {
	source  ports.DatasetSource
	builder *services.GraphBuilder
	graphs  ports.GraphProvider
	cache   querybus.Cache
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewRebuildGraphHandler creates a new rebuild handler
func NewRebuildGraphHandler(
	source ports.DatasetSource,
	builder *services.GraphBuilder,
	graphs ports.GraphProvider,
	cache querybus.Cache,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *RebuildGraphHandler {
	return &RebuildGraphHandler{
		source:  source,
		builder: builder,
		graphs:  graphs,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle executes the rebuild
func (h *RebuildGraphHandler) Handle(ctx context.Context) error {
	dataset, err := h.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	graph, err := h.builder.Build(ctx, dataset)
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}

	h.graphs.Swap(graph)
	h.metrics.ObserveGraph(graph.NodeCount(), graph.EdgeCount())

	// Cached query results belong to the previous graph
	if err := h.cache.Flush(ctx); err != nil {
		h.logger.Warn("Failed to flush query cache after swap", zap.Error(err))
	}

	h.logger.Info("Graph rebuilt and swapped",
		zap.String("graphID", graph.ID().String()),
		zap.Int("nodes", graph.NodeCount()),
		zap.Int("edges", graph.EdgeCount()),
	)

	return nil
}
