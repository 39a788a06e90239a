package handlers

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"socialgraph/application/ports"
	"socialgraph/application/queries"
	"socialgraph/application/services"
)

// RankPostsHandler handles importance-ranking queries
type RankPostsHandler struct {
	graphs ports.GraphProvider
	ranker *services.PostRanker
	logger *zap.Logger
}

// NewRankPostsHandler creates a new ranking handler
func NewRankPostsHandler(graphs ports.GraphProvider, ranker *services.PostRanker, logger *zap.Logger) *RankPostsHandler {
	return &RankPostsHandler{
		graphs: graphs,
		ranker: ranker,
		logger: logger,
	}
}

// Handle executes the ranking query. An unrecognized mode fails only this
// call; the graph stays valid for subsequent queries.
func (h *RankPostsHandler) Handle(ctx context.Context, query queries.RankPostsQuery) (*queries.RankPostsResult, error) {
	graph, err := h.graphs.Current()
	if err != nil {
		return nil, err
	}

	ranked, err := h.ranker.Rank(graph, services.RankingMode(query.Mode), query.ViewsImportance, query.N)
	if err != nil {
		return nil, err
	}

	return &queries.RankPostsResult{
		GraphID:            graph.ID().String(),
		Mode:               query.Mode,
		Ranked:             ranked,
		HighlightedPostIDs: services.HighlightIDs(ranked),
		Label:              RankingLabel(len(ranked), query.Mode),
	}, nil
}

// RankingLabel builds the visualizer title naming the ranking mode used
func RankingLabel(highlighted int, mode string) string {
	title := "Social Media Graph"
	if highlighted > 0 {
		title += fmt.Sprintf(": %d Important Posts at the Top Sorted by %s", highlighted, capitalize(mode))
	}
	return title
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
