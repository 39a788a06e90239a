package handlers

import (
	"context"

	"go.uber.org/zap"

	"socialgraph/application/ports"
	"socialgraph/application/queries"
	"socialgraph/application/services"
)

// FilterPostsHandler handles content-filtering queries
type FilterPostsHandler struct {
	graphs ports.GraphProvider
	filter *services.PostFilter
	logger *zap.Logger
}

// NewFilterPostsHandler creates a new filter handler
func NewFilterPostsHandler(graphs ports.GraphProvider, filter *services.PostFilter, logger *zap.Logger) *FilterPostsHandler {
	return &FilterPostsHandler{
		graphs: graphs,
		filter: filter,
		logger: logger,
	}
}

// Handle executes the filter query. A query matching nothing is not an error;
// it returns an empty contents list.
func (h *FilterPostsHandler) Handle(ctx context.Context, query queries.FilterPostsQuery) (*queries.FilterPostsResult, error) {
	graph, err := h.graphs.Current()
	if err != nil {
		return nil, err
	}

	contents := h.filter.FilterPosts(graph, query.Keywords, query.AuthorFilter)

	return &queries.FilterPostsResult{
		GraphID:  graph.ID().String(),
		Contents: contents,
		Count:    len(contents),
	}, nil
}
