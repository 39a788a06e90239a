package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"socialgraph/application/queries"
	"socialgraph/application/services"
	"socialgraph/domain/config"
	"socialgraph/domain/core/aggregates"
	"socialgraph/domain/core/entities"
	"socialgraph/domain/core/validators"
	pkgerrors "socialgraph/pkg/errors"
)

// stubProvider serves a fixed graph, or not-found when empty
type stubProvider struct {
	graph *aggregates.Graph
}

func (p *stubProvider) Current() (*aggregates.Graph, error) {
	if p.graph == nil {
		return nil, pkgerrors.NewNotFoundError("graph")
	}
	return p.graph, nil
}

func (p *stubProvider) Swap(graph *aggregates.Graph) { p.graph = graph }

func builtGraph(t *testing.T) *aggregates.Graph {
	t.Helper()

	ds := entities.Dataset{
		Users: []entities.UserRecord{
			{ID: "u1", Username: "alice", Attributes: entities.UserAttributes{Age: 30, Gender: "female", Location: "Berlin"}},
			{ID: "u2", Username: "bob", Attributes: entities.UserAttributes{Age: 22, Gender: "male", Location: "Oslo"}},
		},
		Posts: []entities.PostRecord{
			{ID: "p1", Author: "u1", Content: "hello world", CreationTime: "2024-01-01T10:00:00Z", Comments: []string{"c1"}, ViewedBy: []string{"u2"}},
			{ID: "p2", Author: "u2", Content: "hi", CreationTime: "2024-01-02T10:00:00Z"},
		},
		Comments: []entities.CommentRecord{
			{ID: "c1", Author: "u2", PostID: "p1", Content: "nice", CreationTime: "2024-01-01T11:00:00Z"},
		},
	}

	builder := services.NewGraphBuilder(validators.NewRecordValidator(), zaptest.NewLogger(t))
	graph, err := builder.Build(context.Background(), ds)
	require.NoError(t, err)
	return graph
}

func TestFilterPostsHandler(t *testing.T) {
	graph := builtGraph(t)
	logger := zaptest.NewLogger(t)
	handler := NewFilterPostsHandler(&stubProvider{graph: graph}, services.NewPostFilter(logger), logger)

	result, err := handler.Handle(context.Background(), queries.FilterPostsQuery{Keywords: []string{"WORLD"}})
	require.NoError(t, err)

	assert.Equal(t, graph.ID().String(), result.GraphID)
	assert.Equal(t, []string{"hello world"}, result.Contents)
	assert.Equal(t, 1, result.Count)
}

func TestFilterPostsHandler_NoGraphYet(t *testing.T) {
	logger := zaptest.NewLogger(t)
	handler := NewFilterPostsHandler(&stubProvider{}, services.NewPostFilter(logger), logger)

	_, err := handler.Handle(context.Background(), queries.FilterPostsQuery{})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeNotFound))
}

func TestRankPostsHandler(t *testing.T) {
	logger := zaptest.NewLogger(t)
	handler := NewRankPostsHandler(&stubProvider{graph: builtGraph(t)}, services.NewPostRanker(logger), logger)

	result, err := handler.Handle(context.Background(), queries.RankPostsQuery{Mode: "comments", ViewsImportance: 0.5, N: 1})
	require.NoError(t, err)

	assert.Equal(t, []services.RankedPost{{PostID: "p1", Score: 1.0}}, result.Ranked)
	assert.Equal(t, []string{"p1"}, result.HighlightedPostIDs)
	assert.Equal(t, "Social Media Graph: 1 Important Posts at the Top Sorted by Comments", result.Label)
}

func TestRankPostsHandler_InvalidModeFailsOnlyThisCall(t *testing.T) {
	logger := zaptest.NewLogger(t)
	provider := &stubProvider{graph: builtGraph(t)}
	handler := NewRankPostsHandler(provider, services.NewPostRanker(logger), logger)

	_, err := handler.Handle(context.Background(), queries.RankPostsQuery{Mode: "likes", ViewsImportance: 0.5, N: 1})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsInvalidRankingMode(err))

	result, err := handler.Handle(context.Background(), queries.RankPostsQuery{Mode: "views", ViewsImportance: 0.5, N: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, result.HighlightedPostIDs)
}

func TestGetGraphDataHandler(t *testing.T) {
	graph := builtGraph(t)
	logger := zaptest.NewLogger(t)
	handler := NewGetGraphDataHandler(&stubProvider{graph: graph}, services.NewPostRanker(logger), config.DefaultDomainConfig(), logger)

	result, err := handler.Handle(context.Background(), queries.GetGraphDataQuery{})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Stats.NodeCount)
	assert.Equal(t, 5, result.Stats.EdgeCount)
	assert.Equal(t, 2, result.Stats.PostCount)
	assert.Equal(t, "Social Media Graph", result.Label)
	assert.Empty(t, result.HighlightedPostIDs)

	require.Len(t, result.Nodes, 5)
	assert.Equal(t, "u1", result.Nodes[0].ID)
	assert.Equal(t, "green", result.Nodes[0].Color)
	assert.Equal(t, "alice", result.Nodes[0].Label)

	require.Len(t, result.Edges, 5)
	assert.Equal(t, "u1", result.Edges[0].Source)
	assert.Equal(t, "p1", result.Edges[0].Target)
	assert.Equal(t, "authored", result.Edges[0].ConnectionType)
}

func TestGetGraphDataHandler_Highlight(t *testing.T) {
	logger := zaptest.NewLogger(t)
	handler := NewGetGraphDataHandler(&stubProvider{graph: builtGraph(t)}, services.NewPostRanker(logger), config.DefaultDomainConfig(), logger)

	result, err := handler.Handle(context.Background(), queries.GetGraphDataQuery{
		Highlight: true, Mode: "views", ViewsImportance: 0.5, N: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"p1"}, result.HighlightedPostIDs)
	assert.Equal(t, "Social Media Graph: 1 Important Posts at the Top Sorted by Views", result.Label)
}

func TestGetWordCloudTextHandler(t *testing.T) {
	logger := zaptest.NewLogger(t)
	handler := NewGetWordCloudTextHandler(&stubProvider{graph: builtGraph(t)}, services.NewPostFilter(logger), logger)

	result, err := handler.Handle(context.Background(), queries.GetWordCloudTextQuery{})
	require.NoError(t, err)

	assert.Equal(t, []string{"hello world", "hi"}, result.Contents)
	assert.Equal(t, "hello world hi", result.Text)
}

func TestRankingLabel(t *testing.T) {
	assert.Equal(t, "Social Media Graph", RankingLabel(0, "views"))
	assert.Equal(t, "Social Media Graph: 3 Important Posts at the Top Sorted by Mixed", RankingLabel(3, "mixed"))
}
