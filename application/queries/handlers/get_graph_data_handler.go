package handlers

import (
	"context"

	"go.uber.org/zap"

	"socialgraph/application/ports"
	"socialgraph/application/queries"
	"socialgraph/application/services"
	domainconfig "socialgraph/domain/config"
)

// GetGraphDataHandler produces the full node/edge payload the external
// visualizer draws from
type GetGraphDataHandler struct {
	graphs ports.GraphProvider
	ranker *services.PostRanker
	domain *domainconfig.DomainConfig
	logger *zap.Logger
}

// NewGetGraphDataHandler creates a new graph data handler
func NewGetGraphDataHandler(
	graphs ports.GraphProvider,
	ranker *services.PostRanker,
	domain *domainconfig.DomainConfig,
	logger *zap.Logger,
) *GetGraphDataHandler {
	return &GetGraphDataHandler{
		graphs: graphs,
		ranker: ranker,
		domain: domain,
		logger: logger,
	}
}

// Handle executes the graph data query
func (h *GetGraphDataHandler) Handle(ctx context.Context, query queries.GetGraphDataQuery) (*queries.GetGraphDataResult, error) {
	graph, err := h.graphs.Current()
	if err != nil {
		return nil, err
	}

	nodes := graph.Nodes()
	edges := graph.Edges()

	result := &queries.GetGraphDataResult{
		GraphID: graph.ID().String(),
		Nodes:   make([]queries.GraphNode, 0, len(nodes)),
		Edges:   make([]queries.GraphEdge, 0, len(edges)),
		Label:   RankingLabel(0, ""),
		Stats: queries.GraphStats{
			NodeCount: graph.NodeCount(),
			EdgeCount: graph.EdgeCount(),
			PostCount: len(graph.Posts()),
		},
	}

	for _, node := range nodes {
		kind := string(node.Kind())
		result.Nodes = append(result.Nodes, queries.GraphNode{
			ID:    node.ID().String(),
			Kind:  kind,
			Label: node.Label(),
			Color: h.domain.ColorForKind(kind),
		})
	}

	for _, edge := range edges {
		result.Edges = append(result.Edges, queries.GraphEdge{
			ID:             edge.ID,
			Source:         edge.SourceID.String(),
			Target:         edge.TargetID.String(),
			ConnectionType: string(edge.Type),
		})
	}

	if query.Highlight {
		ranked, err := h.ranker.Rank(graph, services.RankingMode(query.Mode), query.ViewsImportance, query.N)
		if err != nil {
			return nil, err
		}
		result.HighlightedPostIDs = services.HighlightIDs(ranked)
		result.Label = RankingLabel(len(ranked), query.Mode)
	}

	return result, nil
}
