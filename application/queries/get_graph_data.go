package queries

import (
	"fmt"

	pkgerrors "socialgraph/pkg/errors"
)

// GetGraphDataQuery represents a query for full graph visualization data.
// With Highlight set, the payload additionally carries the top-n post ids
// under the given ranking mode so the visualizer can place them in a
// distinguished region.
type GetGraphDataQuery struct {
	Highlight       bool    `json:"highlight,omitempty"`
	Mode            string  `json:"mode,omitempty"`
	ViewsImportance float64 `json:"views_importance,omitempty"`
	N               int     `json:"n,omitempty"`
}

// Validate validates the query
func (q GetGraphDataQuery) Validate() error {
	if q.Highlight && q.Mode == "" {
		return pkgerrors.NewValidationError("ranking mode is required when highlighting")
	}
	return nil
}

// CacheKey returns a deterministic key
func (q GetGraphDataQuery) CacheKey() string {
	return fmt.Sprintf("hl=%t|mode=%s|vi=%g|n=%d", q.Highlight, q.Mode, q.ViewsImportance, q.N)
}

// GetGraphDataResult represents the complete graph data for visualization
type GetGraphDataResult struct {
	GraphID            string      `json:"graph_id"`
	Nodes              []GraphNode `json:"nodes"`
	Edges              []GraphEdge `json:"edges"`
	HighlightedPostIDs []string    `json:"highlighted_post_ids,omitempty"`
	Label              string      `json:"label"`
	Stats              GraphStats  `json:"stats"`
}

// GraphNode is one node in the visualization payload
type GraphNode struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// GraphEdge is one directed edge in the visualization payload
type GraphEdge struct {
	ID             string `json:"id"`
	Source         string `json:"source"`
	Target         string `json:"target"`
	ConnectionType string `json:"connection_type"`
}

// GraphStats contains graph statistics
type GraphStats struct {
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
	PostCount int `json:"post_count"`
}
