package services

import (
	"context"

	"go.uber.org/zap"

	"socialgraph/domain/core/aggregates"
	"socialgraph/domain/core/entities"
	"socialgraph/domain/core/validators"
	"socialgraph/domain/core/valueobjects"
)

// GraphBuilder ingests the three raw entity collections and populates a graph
// aggregate. The build is atomic: any malformed record or id collision aborts
// it and no partial graph escapes.
type GraphBuilder struct {
	validator *validators.RecordValidator
	logger    *zap.Logger
}

// NewGraphBuilder creates a graph builder
func NewGraphBuilder(validator *validators.RecordValidator, logger *zap.Logger) *GraphBuilder {
	return &GraphBuilder{
		validator: validator,
		logger:    logger,
	}
}

// Build constructs a graph from a dataset. Insertion order is deterministic
// and reproducible: first users in input order, then posts, then comments.
// Per post, the authored edge precedes the viewed edges (one per viewer, in
// the given order); per comment, the authored edge precedes the commented_on
// edge.
func (b *GraphBuilder) Build(ctx context.Context, dataset entities.Dataset) (*aggregates.Graph, error) {
	graph := aggregates.NewGraph()

	for _, rec := range dataset.Users {
		if err := b.validator.ValidateUser(rec); err != nil {
			return nil, err
		}

		id, err := valueobjects.NewNodeID(rec.ID)
		if err != nil {
			return nil, err
		}

		user := entities.NewUser(id, rec.Username, rec.Attributes.Age, rec.Attributes.Gender,
			rec.Attributes.Location, rec.Posts, rec.Comments, rec.PostsRead)
		if err := graph.AddNode(user); err != nil {
			return nil, err
		}
	}

	for _, rec := range dataset.Posts {
		if err := b.validator.ValidatePost(rec); err != nil {
			return nil, err
		}

		id, err := valueobjects.NewNodeID(rec.ID)
		if err != nil {
			return nil, err
		}
		authorID, err := valueobjects.NewNodeID(rec.Author)
		if err != nil {
			return nil, err
		}

		post := entities.NewPost(id, rec.Author, rec.Content, rec.CreationTime, rec.Comments, rec.ViewedBy)
		if err := graph.AddNode(post); err != nil {
			return nil, err
		}

		graph.AddEdge(authorID, id, entities.ConnectionAuthored)

		for _, viewer := range rec.ViewedBy {
			viewerID, err := valueobjects.NewNodeID(viewer)
			if err != nil {
				return nil, err
			}
			graph.AddEdge(viewerID, id, entities.ConnectionViewed)
		}
	}

	for _, rec := range dataset.Comments {
		if err := b.validator.ValidateComment(rec); err != nil {
			return nil, err
		}

		id, err := valueobjects.NewNodeID(rec.ID)
		if err != nil {
			return nil, err
		}
		authorID, err := valueobjects.NewNodeID(rec.Author)
		if err != nil {
			return nil, err
		}
		postID, err := valueobjects.NewNodeID(rec.PostID)
		if err != nil {
			return nil, err
		}

		comment := entities.NewComment(id, rec.Author, rec.PostID, rec.Content, rec.CreationTime)
		if err := graph.AddNode(comment); err != nil {
			return nil, err
		}

		graph.AddEdge(authorID, id, entities.ConnectionAuthored)
		graph.AddEdge(id, postID, entities.ConnectionCommentedOn)
	}

	b.logger.Info("Social graph built",
		zap.String("graphID", graph.ID().String()),
		zap.Int("users", len(dataset.Users)),
		zap.Int("posts", len(dataset.Posts)),
		zap.Int("comments", len(dataset.Comments)),
		zap.Int("nodes", graph.NodeCount()),
		zap.Int("edges", graph.EdgeCount()),
	)

	return graph, nil
}
