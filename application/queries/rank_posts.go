package queries

import (
	"fmt"

	"socialgraph/application/services"
	pkgerrors "socialgraph/pkg/errors"
)

// RankPostsQuery asks for the top-n posts by importance score under the given
// ranking mode
type RankPostsQuery struct {
	Mode            string  `json:"mode"`
	ViewsImportance float64 `json:"views_importance"`
	N               int     `json:"n"`
}

// Validate validates the query. Mode membership is the ranker's contract to
// enforce; the range check lives here too so the bus rejects it early.
func (q RankPostsQuery) Validate() error {
	if q.Mode == "" {
		return pkgerrors.NewValidationError("ranking mode is required")
	}
	if q.ViewsImportance < 0 || q.ViewsImportance > 1 {
		return pkgerrors.NewValidationError("views importance must lie in [0, 1]")
	}
	return nil
}

// CacheKey returns a deterministic key
func (q RankPostsQuery) CacheKey() string {
	return fmt.Sprintf("mode=%s|vi=%g|n=%d", q.Mode, q.ViewsImportance, q.N)
}

// RankPostsResult carries the ranked (postId, score) pairs in descending
// score order, plus the projected id list and title label for the visualizer
type RankPostsResult struct {
	GraphID            string                `json:"graph_id"`
	Mode               string                `json:"mode"`
	Ranked             []services.RankedPost `json:"ranked"`
	HighlightedPostIDs []string              `json:"highlighted_post_ids"`
	Label              string                `json:"label"`
}
