package services

import (
	"strings"

	"go.uber.org/zap"

	"socialgraph/domain/core/aggregates"
	"socialgraph/domain/core/valueobjects"
)

// PostFilter evaluates attribute and keyword predicates over a built graph.
// It is a pure function of (graph, parameters) and safe for concurrent use.
type PostFilter struct {
	logger *zap.Logger
}

// NewPostFilter creates a post filter
func NewPostFilter(logger *zap.Logger) *PostFilter {
	return &PostFilter{logger: logger}
}

// FilterPosts returns the content of every post matching the given criteria,
// in the graph's post-insertion order.
//
// The author filter requires every entry to match the author's attribute
// exactly (case-sensitive); an author without attributes (placeholder or
// absent) matches only an empty filter. The keyword list requires at least one
// case-insensitive substring match in the post content; an empty list imposes
// no constraint.
func (f *PostFilter) FilterPosts(graph *aggregates.Graph, keywords []string, authorFilter map[string]string) []string {
	filtered := []string{}

	for _, post := range graph.Posts() {
		if !f.authorMatches(graph, post.AuthorID, authorFilter) {
			continue
		}
		if !keywordMatches(post.Content, keywords) {
			continue
		}
		filtered = append(filtered, post.Content)
	}

	f.logger.Debug("Filtered posts",
		zap.String("graphID", graph.ID().String()),
		zap.Int("keywords", len(keywords)),
		zap.Int("authorFilters", len(authorFilter)),
		zap.Int("matched", len(filtered)),
	)

	return filtered
}

func (f *PostFilter) authorMatches(graph *aggregates.Graph, authorID string, authorFilter map[string]string) bool {
	if len(authorFilter) == 0 {
		return true
	}

	id, err := valueobjects.NewNodeID(authorID)
	if err != nil {
		return false
	}

	// A missing author cannot occur after a build (the placeholder exists),
	// but the placeholder exposes no attributes either way.
	author, ok := graph.Node(id)
	if !ok {
		return false
	}

	for name, want := range authorFilter {
		got, ok := author.Attribute(name)
		if !ok || got != want {
			return false
		}
	}
	return true
}

func keywordMatches(content string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}

	lowered := strings.ToLower(content)
	for _, keyword := range keywords {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
