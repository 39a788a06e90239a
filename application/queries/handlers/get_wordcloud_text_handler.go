package handlers

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"socialgraph/application/ports"
	"socialgraph/application/queries"
	"socialgraph/application/services"
)

// GetWordCloudTextHandler prepares the word-cloud collaborator's input from a
// filtered post list
type GetWordCloudTextHandler struct {
	graphs ports.GraphProvider
	filter *services.PostFilter
	logger *zap.Logger
}

// NewGetWordCloudTextHandler creates a new word-cloud text handler
func NewGetWordCloudTextHandler(graphs ports.GraphProvider, filter *services.PostFilter, logger *zap.Logger) *GetWordCloudTextHandler {
	return &GetWordCloudTextHandler{
		graphs: graphs,
		filter: filter,
		logger: logger,
	}
}

// Handle executes the word-cloud text query
func (h *GetWordCloudTextHandler) Handle(ctx context.Context, query queries.GetWordCloudTextQuery) (*queries.GetWordCloudTextResult, error) {
	graph, err := h.graphs.Current()
	if err != nil {
		return nil, err
	}

	contents := h.filter.FilterPosts(graph, query.Keywords, query.AuthorFilter)

	return &queries.GetWordCloudTextResult{
		GraphID:  graph.ID().String(),
		Contents: contents,
		Text:     strings.Join(contents, " "),
	}, nil
}
