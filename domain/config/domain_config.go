package config

// DomainConfig holds all configurable business rules and defaults
type DomainConfig struct {
	// Ranking defaults
	DefaultRankingMode    string
	DefaultViewsImportance float64
	DefaultTopN           int

	// Node display colors per kind, consumed by the external visualizer
	UserColor    string
	PostColor    string
	CommentColor string
	UnknownColor string

	// Query limits
	MaxTopN int
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		DefaultRankingMode:     "mixed",
		DefaultViewsImportance: 0.5,
		DefaultTopN:            1,

		UserColor:    "green",
		PostColor:    "blue",
		CommentColor: "magenta",
		UnknownColor: "gray",

		MaxTopN: 1000,
	}
}

// ColorForKind maps a node kind string to its display color
func (c *DomainConfig) ColorForKind(kind string) string {
	switch kind {
	case "user":
		return c.UserColor
	case "post":
		return c.PostColor
	case "comment":
		return c.CommentColor
	}
	return c.UnknownColor
}
