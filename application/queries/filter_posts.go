package queries

import (
	"fmt"
	"sort"
	"strings"
)

// FilterPostsQuery asks for the content of every post matching the given
// criteria. Both filters are optional; an empty query matches every post.
type FilterPostsQuery struct {
	// Keywords pass a post when at least one occurs as a case-insensitive
	// substring of its content
	Keywords []string `json:"keywords,omitempty"`
	// AuthorFilter drops a post unless every entry matches the author's
	// attribute exactly (case-sensitive)
	AuthorFilter map[string]string `json:"author_filter,omitempty"`
}

// Validate validates the query
func (q FilterPostsQuery) Validate() error {
	return nil
}

// CacheKey returns a deterministic key; map iteration order must not leak in
func (q FilterPostsQuery) CacheKey() string {
	pairs := make([]string, 0, len(q.AuthorFilter))
	for k, v := range q.AuthorFilter {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return fmt.Sprintf("kw=%s|af=%s", strings.Join(q.Keywords, ","), strings.Join(pairs, ","))
}

// FilterPostsResult carries the surviving posts' content strings in the
// graph's post-insertion order
type FilterPostsResult struct {
	GraphID  string   `json:"graph_id"`
	Contents []string `json:"contents"`
	Count    int      `json:"count"`
}
