package queries

// GetWordCloudTextQuery asks for the word-cloud collaborator's input: the
// filtered posts' contents plus the same strings joined with single spaces
type GetWordCloudTextQuery struct {
	Keywords     []string          `json:"keywords,omitempty"`
	AuthorFilter map[string]string `json:"author_filter,omitempty"`
}

// Validate validates the query
func (q GetWordCloudTextQuery) Validate() error {
	return nil
}

// CacheKey returns a deterministic key
func (q GetWordCloudTextQuery) CacheKey() string {
	return FilterPostsQuery{Keywords: q.Keywords, AuthorFilter: q.AuthorFilter}.CacheKey()
}

// GetWordCloudTextResult is the word-cloud generator's input payload
type GetWordCloudTextResult struct {
	GraphID  string   `json:"graph_id"`
	Contents []string `json:"contents"`
	Text     string   `json:"text"`
}
